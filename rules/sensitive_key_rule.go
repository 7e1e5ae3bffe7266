package rules

import (
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

type sensitiveKeyword struct {
	keyword  string
	severity models.Severity
}

// Ordered so that the first match is the most specific.
var sensitiveKeywords = []sensitiveKeyword{
	{"PRIVATE_KEY", models.SeverityHigh},
	{"ENCRYPTION_KEY", models.SeverityHigh},
	{"API_KEY", models.SeverityHigh},
	{"APIKEY", models.SeverityHigh},
	{"SECRET", models.SeverityHigh},
	{"PASSWORD", models.SeverityHigh},
	{"PASSWD", models.SeverityHigh},
	{"TOKEN", models.SeverityHigh},
	{"CREDENTIAL", models.SeverityHigh},
	{"SSH_KEY", models.SeverityHigh},
	{"DATABASE_URL", models.SeverityMedium},
	{"DB_URL", models.SeverityMedium},
	{"CONNECTION_STRING", models.SeverityMedium},
	{"PWD", models.SeverityMedium},
}

// SensitiveKeyRule flags variables whose name marks them as secret but whose
// value is stored in plaintext.
type SensitiveKeyRule struct{}

func (SensitiveKeyRule) Name() string { return "sensitive-key" }

func (r SensitiveKeyRule) Evaluate(logger lager.Logger, snap snapshot.Snapshot) ([]models.Detection, error) {
	var detections []models.Detection

	for _, env := range snap.Environments {
		for _, v := range env.Variables {
			keyword, ok := matchSensitiveKeyword(v.Key)
			if !ok || isTrivialValue(v.Value) || isEncryptedReference(v.Value) {
				continue
			}

			detections = append(detections, models.Detection{
				FindingType:    models.FindingTypeExposedInCode,
				Severity:       escalateForProduction(env, keyword.severity),
				EnvironmentID:  env.ID,
				VariableName:   v.Key,
				Location:       location(env, v.Key),
				Description:    fmt.Sprintf("Sensitive variable %q is stored in plaintext in %s", v.Key, env.Name),
				Recommendation: "Store this value encrypted at rest or reference it from a secrets manager, and rotate it",
			})
		}
	}

	return detections, nil
}

func matchSensitiveKeyword(key string) (sensitiveKeyword, bool) {
	upcased := strings.ToUpper(key)
	for _, k := range sensitiveKeywords {
		if strings.Contains(upcased, k.keyword) {
			return k, true
		}
	}
	return sensitiveKeyword{}, false
}

func isSensitiveKey(key string) bool {
	_, ok := matchSensitiveKeyword(key)
	return ok
}

// isTrivialValue is true for settings that happen to have a sensitive name,
// like PASSWORD_MIN_LENGTH=12 or TOKEN_ROTATION=true.
func isTrivialValue(value string) bool {
	if value == "" {
		return true
	}
	if _, err := strconv.ParseBool(value); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil && len(value) < 8 {
		return true
	}
	return false
}
