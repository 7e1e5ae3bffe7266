package db

import (
	"encoding/json"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"

	"github.com/pivotal-cf/cred-audit/snapshot"
)

const activityWindow = 24 * time.Hour

type snapshotSource struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewSnapshotSource reads a project's environments, their secrets and the
// last day of the project's audit trail.
func NewSnapshotSource(db *gorm.DB, clock clock.Clock) snapshot.Source {
	return &snapshotSource{
		db:    db,
		clock: clock,
	}
}

func (s *snapshotSource) Snapshot(logger lager.Logger, projectID string) (snapshot.Snapshot, error) {
	logger = logger.Session("snapshot", lager.Data{"project": projectID})
	logger.Debug("starting")
	defer logger.Debug("done")

	if _, err := NewProjectRepository(s.db).Find(logger, projectID); err != nil {
		return snapshot.Snapshot{}, err
	}

	now := s.clock.Now().UTC()
	snap := snapshot.Snapshot{
		ProjectID: projectID,
		TakenAt:   now,
	}

	var environments []Environment
	if err := s.db.Where("project_id = ?", projectID).Order("name asc").Find(&environments).Error; err != nil {
		logger.Error("failed-to-load-environments", err)
		return snapshot.Snapshot{}, err
	}

	if len(environments) > 0 {
		ids := make([]string, len(environments))
		for i, env := range environments {
			ids[i] = env.ID
		}

		var secrets []Secret
		if err := s.db.Where("environment_id IN (?)", ids).Order("name asc").Find(&secrets).Error; err != nil {
			logger.Error("failed-to-load-secrets", err)
			return snapshot.Snapshot{}, err
		}

		byEnvironment := map[string][]snapshot.Variable{}
		for _, secret := range secrets {
			byEnvironment[secret.EnvironmentID] = append(byEnvironment[secret.EnvironmentID], snapshot.Variable{
				Key:   secret.Name,
				Value: secret.Value,
			})
		}

		for _, env := range environments {
			snap.Environments = append(snap.Environments, snapshot.Environment{
				ID:        env.ID,
				Name:      env.Name,
				Variables: byEnvironment[env.ID],
			})
		}
	}

	events, err := NewAuditEventRepository(s.db, s.clock).Since(logger, projectID, now.Add(-activityWindow))
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	for _, event := range events {
		details, _ := json.Marshal(event.Metadata)

		snap.RecentActivity = append(snap.RecentActivity, snapshot.Activity{
			Action:       event.Action,
			ResourceType: event.ResourceType,
			Details:      string(details),
			At:           event.CreatedAt,
		})
	}

	logger.Debug("loaded", lager.Data{
		"environments": len(snap.Environments),
		"variables":    snap.VariableCount(),
		"activity":     len(snap.RecentActivity),
	})

	return snap, nil
}
