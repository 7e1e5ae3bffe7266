package rules

import (
	"errors"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/redact"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

var errReferencedValue = errors.New("error referenced a variable value")

//go:generate counterfeiter . Rule

// Rule maps a snapshot to zero or more raw detections.
type Rule interface {
	Name() string
	Evaluate(lager.Logger, snapshot.Snapshot) ([]models.Detection, error)
}

// Table is an ordered set of rules evaluated against one snapshot.
type Table []Rule

type Result struct {
	Detections []models.Detection
	Evaluated  []string
	Failed     []string
}

// Evaluate runs every rule. A failing rule does not stop the others; its
// error is collected and its name recorded in Failed.
func (t Table) Evaluate(logger lager.Logger, snap snapshot.Snapshot) (Result, error) {
	logger = logger.Session("evaluate-rules", lager.Data{
		"project": snap.ProjectID,
		"rules":   len(t),
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	var (
		result Result
		errs   error
	)

	values := snap.Values()

	for _, rule := range t {
		detections, err := rule.Evaluate(logger, snap)
		if err != nil {
			if redact.Contains(err.Error(), values...) {
				err = errReferencedValue
			}

			logger.Error("rule-failed", err, lager.Data{"rule": rule.Name()})
			result.Failed = append(result.Failed, rule.Name())
			errs = multierror.Append(errs, fmt.Errorf("rule %s: %s", rule.Name(), err))
			continue
		}

		result.Evaluated = append(result.Evaluated, rule.Name())
		result.Detections = append(result.Detections, detections...)
	}

	return result, errs
}

func location(env snapshot.Environment, key string) string {
	return fmt.Sprintf("%s/%s", env.Name, key)
}

var productionNames = []string{"prod", "production", "live"}

func isProduction(env snapshot.Environment) bool {
	name := strings.ToLower(env.Name)
	for _, p := range productionNames {
		if name == p || strings.HasPrefix(name, p+"-") || strings.HasSuffix(name, "-"+p) {
			return true
		}
	}
	return false
}

// escalateForProduction raises a severity one step for production
// environments.
func escalateForProduction(env snapshot.Environment, s models.Severity) models.Severity {
	if !isProduction(env) {
		return s
	}

	rank := s.Rank()
	if rank == 0 || rank >= len(models.Severities) {
		return s
	}

	return models.Severities[rank-1]
}

var encryptedPrefixes = []string{"enc:", "enc[", "vault:", "sops:", "ENC[", "ENC:", "kms:", "$ANSIBLE_VAULT"}

// isEncryptedReference is true for values that are ciphertext or a pointer
// into another secret store rather than the secret itself.
func isEncryptedReference(value string) bool {
	for _, p := range encryptedPrefixes {
		if strings.HasPrefix(value, p) {
			return true
		}
	}

	return strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}")
}
