package rules

import (
	"fmt"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/redact"
	"github.com/pivotal-cf/cred-audit/sniff"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

// PatternRule matches stored values against known credential formats.
// Critical matches also raise a leak.
type PatternRule struct {
	Sniffer sniff.Sniffer
}

func NewPatternRule(sniffer sniff.Sniffer) PatternRule {
	return PatternRule{Sniffer: sniffer}
}

func (PatternRule) Name() string { return "known-format" }

func (r PatternRule) Evaluate(logger lager.Logger, snap snapshot.Snapshot) ([]models.Detection, error) {
	logger = logger.Session("known-format")

	var detections []models.Detection

	for _, env := range snap.Environments {
		for _, v := range env.Variables {
			value := []byte(v.Value)

			for _, violation := range r.Sniffer.Sniff(logger, value) {
				severity := escalateForProduction(env, violation.Severity)

				detection := models.Detection{
					FindingType:    models.FindingTypeExposedInCode,
					Severity:       severity,
					EnvironmentID:  env.ID,
					VariableName:   v.Key,
					Location:       location(env, v.Key),
					Description:    fmt.Sprintf("Value of %q matches the %s credential format", v.Key, violation.Pattern),
					Recommendation: "Revoke and rotate this credential, then store the replacement encrypted",
				}

				if severity == models.SeverityCritical {
					detection.Leak = &models.LeakSignal{
						ProjectID:     snap.ProjectID,
						DetectionType: violation.DetectionType,
						Severity:      severity,
						Source:        "secret_store",
						Key:           fmt.Sprintf("%s:%s:%s", violation.Pattern, env.ID, v.Key),
						Description:   fmt.Sprintf("A %s credential is stored in plaintext in %s", violation.Pattern, env.Name),
						Sample:        redact.Mask(string(value[violation.Start:violation.End])),
						Metadata: map[string]interface{}{
							"environment": env.Name,
							"variable":    v.Key,
							"pattern":     violation.Pattern,
						},
					}
				}

				detections = append(detections, detection)
			}
		}
	}

	return detections, nil
}
