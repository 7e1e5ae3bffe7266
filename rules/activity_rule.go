package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/redact"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

const defaultReadVolumeThreshold = 500

var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bunion\b.*\bselect\b`),
	regexp.MustCompile(`(?i)\bdrop\b.*\btable\b`),
	regexp.MustCompile(`(?i)\bexec\b.*\bxp_`),
	regexp.MustCompile(`(?i)';.*--`),
}

// ActivityRule inspects the project's recent audit trail for signs of data
// exfiltration: bulk reads and injection payloads.
type ActivityRule struct {
	ReadVolumeThreshold int
}

func (ActivityRule) Name() string { return "suspicious-activity" }

func (r ActivityRule) Evaluate(logger lager.Logger, snap snapshot.Snapshot) ([]models.Detection, error) {
	threshold := r.ReadVolumeThreshold
	if threshold == 0 {
		threshold = defaultReadVolumeThreshold
	}

	var detections []models.Detection

	counts := map[string]int{}
	injected := map[string]snapshot.Activity{}

	for _, activity := range snap.RecentActivity {
		counts[activity.Action]++

		if _, seen := injected[activity.Action]; seen {
			continue
		}

		for _, pattern := range injectionPatterns {
			if pattern.MatchString(activity.Details) {
				injected[activity.Action] = activity
				break
			}
		}
	}

	for _, action := range sortedKeys(counts) {
		count := counts[action]
		if count <= threshold || !strings.Contains(strings.ToLower(action), "read") {
			continue
		}

		detections = append(detections, models.Detection{
			FindingType:    models.DetectionTypeDatabaseLeak.FindingType(),
			Severity:       models.SeverityHigh,
			VariableName:   action,
			Location:       fmt.Sprintf("Action: %s", action),
			Description:    fmt.Sprintf("Unusual number of %s operations detected (%d in the last 24h)", action, count),
			Recommendation: "Review access patterns and ensure no data exfiltration is occurring",
			Leak: &models.LeakSignal{
				ProjectID:     snap.ProjectID,
				DetectionType: models.DetectionTypeDatabaseLeak,
				Severity:      models.SeverityHigh,
				Source:        "audit_log",
				Key:           "read-volume:" + action,
				Description:   fmt.Sprintf("Unusual number of %s operations detected (%d in the last 24h)", action, count),
				Metadata: map[string]interface{}{
					"action": action,
					"count":  count,
				},
			},
		})
	}

	for _, action := range sortedActivityKeys(injected) {
		activity := injected[action]

		detections = append(detections, models.Detection{
			FindingType:    models.DetectionTypeDatabaseLeak.FindingType(),
			Severity:       models.SeverityCritical,
			VariableName:   action,
			Location:       fmt.Sprintf("Action: %s", action),
			Description:    "Potential SQL injection attempt detected",
			Recommendation: "Immediate investigation required. Review security measures and input validation",
			Leak: &models.LeakSignal{
				ProjectID:      snap.ProjectID,
				DetectionType:  models.DetectionTypeDatabaseLeak,
				Severity:       models.SeverityCritical,
				Source:         "audit_log",
				Key:            "injection:" + action,
				Description:    "Potential SQL injection attempt detected",
				Sample:         redact.Mask(activity.Details),
				AffectedTables: []string{activity.ResourceType},
				Metadata: map[string]interface{}{
					"action":      action,
					"observed_at": activity.At,
				},
			},
		})
	}

	return detections, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedActivityKeys(m map[string]snapshot.Activity) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
