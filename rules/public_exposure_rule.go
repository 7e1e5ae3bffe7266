package rules

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

// Variables with these prefixes are compiled into client bundles by the
// common frontend toolchains.
var publicPrefixes = []string{
	"NEXT_PUBLIC_",
	"VITE_",
	"REACT_APP_",
	"EXPO_PUBLIC_",
	"NUXT_PUBLIC_",
	"GATSBY_",
	"PUBLIC_",
}

// Names that are published by design even though they contain a sensitive
// keyword.
var publishableNames = []string{"PUBLISHABLE", "ANON_KEY", "PUBLIC_KEY", "SITE_KEY"}

// PublicExposureRule flags secrets that end up in public artifacts because
// of how they are named.
type PublicExposureRule struct{}

func (PublicExposureRule) Name() string { return "public-exposure" }

func (r PublicExposureRule) Evaluate(logger lager.Logger, snap snapshot.Snapshot) ([]models.Detection, error) {
	var detections []models.Detection

	for _, env := range snap.Environments {
		for _, v := range env.Variables {
			if isTrivialValue(v.Value) {
				continue
			}

			upcased := strings.ToUpper(v.Key)

			if prefix, ok := publicPrefix(upcased); ok && isSensitiveKey(strings.TrimPrefix(upcased, prefix)) && !isPublishable(upcased) {
				severity := escalateForProduction(env, models.SeverityHigh)
				detections = append(detections, models.Detection{
					FindingType:    models.FindingTypePublicRepository,
					Severity:       severity,
					EnvironmentID:  env.ID,
					VariableName:   v.Key,
					Location:       location(env, v.Key),
					Description:    fmt.Sprintf("%q uses the %s prefix and is shipped to every client", v.Key, prefix),
					Recommendation: "Drop the public prefix and read this value on the server only, then rotate it",
					Leak: &models.LeakSignal{
						ProjectID:     snap.ProjectID,
						DetectionType: models.DetectionTypeEnvLeak,
						Severity:      severity,
						Source:        "client_bundle",
						Key:           fmt.Sprintf("public-prefix:%s:%s", env.ID, v.Key),
						Description:   fmt.Sprintf("Secret %q is exposed through the client bundle of %s", v.Key, env.Name),
						Metadata: map[string]interface{}{
							"environment": env.Name,
							"variable":    v.Key,
						},
					},
				})
				continue
			}

			if strings.Contains(upcased, "EXPOSED") || (strings.Contains(upcased, "PUBLIC") && isSensitiveKey(upcased) && !isPublishable(upcased)) {
				detections = append(detections, models.Detection{
					FindingType:    models.FindingTypeExposedInCode,
					Severity:       models.SeverityHigh,
					EnvironmentID:  env.ID,
					VariableName:   v.Key,
					Location:       location(env, v.Key),
					Description:    fmt.Sprintf("Environment variable %q has suspicious naming that suggests it might be exposed", v.Key),
					Recommendation: "Review this environment variable and ensure it is not publicly accessible",
					Leak: &models.LeakSignal{
						ProjectID:     snap.ProjectID,
						DetectionType: models.DetectionTypeEnvLeak,
						Severity:      models.SeverityHigh,
						Source:        "secret_store",
						Key:           fmt.Sprintf("exposed-name:%s:%s", env.ID, v.Key),
						Description:   fmt.Sprintf("Environment variable %q in %s is named as publicly exposed", v.Key, env.Name),
						Metadata: map[string]interface{}{
							"environment": env.Name,
							"variable":    v.Key,
						},
					},
				})
			}
		}
	}

	return detections, nil
}

func publicPrefix(upcasedKey string) (string, bool) {
	for _, p := range publicPrefixes {
		if strings.HasPrefix(upcasedKey, p) {
			return p, true
		}
	}
	return "", false
}

func isPublishable(upcasedKey string) bool {
	for _, n := range publishableNames {
		if strings.Contains(upcasedKey, n) {
			return true
		}
	}
	return false
}
