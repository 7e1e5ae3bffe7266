package lifecycle

import (
	"errors"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/models"
)

var ErrActorRequired = errors.New("an actor is required to change a finding")

// Summary counts what reconciling one batch of detections did.
type Summary struct {
	Detections int
	Created    int
	Escalated  int
	Duplicates int
}

type TransitionRequest struct {
	FindingID string

	// ExpectedStatus, when set, is the status the caller last saw.
	ExpectedStatus models.FindingStatus
	Status         models.FindingStatus
	Actor          string
	Notes          string
}

//go:generate counterfeiter . Manager

type Manager interface {
	Reconcile(lager.Logger, db.Scan, []models.Detection) ([]db.Finding, Summary, error)
	Transition(lager.Logger, TransitionRequest) (db.Finding, error)
}

type manager struct {
	store db.Transactor
}

func NewManager(store db.Transactor) Manager {
	return &manager{store: store}
}

// Reconcile merges detections into the project's active findings. A
// detection with no active finding for its key creates one; a stronger
// detection escalates the existing finding; anything else is a duplicate.
// Findings and their audit events are written in one transaction.
func (m *manager) Reconcile(logger lager.Logger, scan db.Scan, detections []models.Detection) ([]db.Finding, Summary, error) {
	logger = logger.Session("reconcile", lager.Data{
		"scan":       scan.ID,
		"project":    scan.ProjectID,
		"detections": len(detections),
	})
	logger.Debug("starting")

	merged, duplicates := Merge(scan.ProjectID, detections)

	summary := Summary{
		Detections: len(detections),
		Duplicates: duplicates,
	}

	var findings []db.Finding

	err := m.store.Transact(logger, func(repos db.Repositories) error {
		if err := repos.Scans.Claim(logger, scan.ID); err != nil {
			return err
		}

		touched := map[string]struct{}{}

		for _, detection := range merged {
			key := detection.Key(scan.ProjectID)

			existing, found, err := repos.Findings.FindActive(logger, key)
			if err != nil {
				return err
			}

			if !found {
				finding, err := create(logger, repos, scan, detection)
				if err != nil {
					return err
				}

				summary.Created++
				findings = append(findings, finding)
				continue
			}

			if !detection.Severity.HigherThan(existing.Severity) {
				summary.Duplicates++
				findings = append(findings, existing)
				continue
			}

			escalated, err := escalate(logger, repos, scan, existing, detection)
			if err != nil {
				return err
			}

			summary.Escalated++
			findings = append(findings, escalated)

			if escalated.ScanID != scan.ID {
				touched[escalated.ScanID] = struct{}{}
			}
		}

		for scanID := range touched {
			if err := repos.Scans.RefreshCounters(logger, scanID); err != nil {
				return err
			}
		}

		return nil
	})
	if errors.Is(err, models.ErrScanNotRunning) {
		logger.Info("scan-no-longer-running")
		return nil, Summary{}, err
	}
	if err != nil {
		logger.Error("failed-to-reconcile", err)
		return nil, Summary{}, err
	}

	sortFindings(findings)

	logger.Debug("done", lager.Data{
		"created":    summary.Created,
		"escalated":  summary.Escalated,
		"duplicates": summary.Duplicates,
	})

	return findings, summary, nil
}

func create(logger lager.Logger, repos db.Repositories, scan db.Scan, detection models.Detection) (db.Finding, error) {
	finding := db.Finding{
		ScanID:         scan.ID,
		ProjectID:      scan.ProjectID,
		EnvironmentID:  detection.EnvironmentID,
		FindingType:    detection.FindingType,
		Severity:       detection.Severity,
		VariableName:   detection.VariableName,
		Location:       detection.Location,
		Description:    detection.Description,
		Recommendation: detection.Recommendation,
		Status:         models.FindingStatusOpen,
	}

	if err := repos.Findings.Create(logger, &finding); err != nil {
		return db.Finding{}, err
	}

	err := repos.Audit.Append(logger, &db.AuditEvent{
		ProjectID:    scan.ProjectID,
		UserID:       scan.TriggeredBy,
		Action:       models.ActionCreated,
		ResourceType: models.ResourceFinding,
		ResourceID:   finding.ID,
		Metadata: db.PropertyMap{
			"scan_id":       scan.ID,
			"finding_type":  string(finding.FindingType),
			"severity":      string(finding.Severity),
			"variable_name": finding.VariableName,
		},
	})
	if err != nil {
		return db.Finding{}, err
	}

	return finding, nil
}

func escalate(logger lager.Logger, repos db.Repositories, scan db.Scan, existing db.Finding, detection models.Detection) (db.Finding, error) {
	if err := repos.Findings.Escalate(logger, existing.ID, detection); err != nil {
		return db.Finding{}, err
	}

	err := repos.Audit.Append(logger, &db.AuditEvent{
		ProjectID:    scan.ProjectID,
		UserID:       scan.TriggeredBy,
		Action:       models.ActionUpdated,
		ResourceType: models.ResourceFinding,
		ResourceID:   existing.ID,
		Metadata: db.PropertyMap{
			"scan_id":      scan.ID,
			"old_severity": string(existing.Severity),
			"new_severity": string(detection.Severity),
		},
	})
	if err != nil {
		return db.Finding{}, err
	}

	return repos.Findings.Find(logger, existing.ID)
}

// Merge collapses detections that share a key into the strongest one,
// keeping the order in which keys were first seen.
func Merge(projectID string, detections []models.Detection) ([]models.Detection, int) {
	index := map[models.FindingKey]int{}

	var (
		merged     []models.Detection
		duplicates int
	)

	for _, detection := range detections {
		key := detection.Key(projectID)

		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, detection)
			continue
		}

		duplicates++
		if detection.Severity.HigherThan(merged[i].Severity) {
			merged[i] = detection
		}
	}

	return merged, duplicates
}

func sortFindings(findings []db.Finding) {
	ranked := make([]models.Ranked, len(findings))
	for i := range findings {
		ranked[i] = findings[i]
	}

	models.SortBySeverity(ranked)

	for i := range ranked {
		findings[i] = ranked[i].(db.Finding)
	}
}
