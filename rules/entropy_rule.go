package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/entropy"
	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

const minEntropyCandidateLength = 16

// EntropyRule flags values that look randomly generated, which is what most
// keys and tokens look like regardless of their variable name.
type EntropyRule struct {
	MinLength int
}

func (EntropyRule) Name() string { return "high-entropy" }

func (r EntropyRule) Evaluate(logger lager.Logger, snap snapshot.Snapshot) ([]models.Detection, error) {
	minLength := r.MinLength
	if minLength == 0 {
		minLength = minEntropyCandidateLength
	}

	var detections []models.Detection

	for _, env := range snap.Environments {
		for _, v := range env.Variables {
			if utf8.RuneCountInString(v.Value) < minLength || strings.ContainsAny(v.Value, " \t\n") {
				continue
			}

			if isEncryptedReference(v.Value) || strings.Contains(v.Value, "://") {
				continue
			}

			if !entropy.IsPasswordSuspect(v.Value) {
				continue
			}

			detections = append(detections, models.Detection{
				FindingType:    models.FindingTypeExposedInCode,
				Severity:       escalateForProduction(env, models.SeverityMedium),
				EnvironmentID:  env.ID,
				VariableName:   v.Key,
				Location:       location(env, v.Key),
				Description:    fmt.Sprintf("Value of %q has the entropy of a generated secret and is stored in plaintext", v.Key),
				Recommendation: "If this is a credential, move it to encrypted storage and rotate it",
			})
		}
	}

	return detections, nil
}
