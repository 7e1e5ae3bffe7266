package lifecycle

import (
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/models"
)

// Transition applies one operator status change. The write is conditional on
// the finding still being in the status it was read in, so concurrent
// changes surface as models.ErrConcurrentModification.
func (m *manager) Transition(logger lager.Logger, req TransitionRequest) (db.Finding, error) {
	logger = logger.Session("transition-finding", lager.Data{
		"finding": req.FindingID,
		"to":      req.Status,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	if req.Actor == "" {
		return db.Finding{}, ErrActorRequired
	}

	var updated db.Finding

	err := m.store.Transact(logger, func(repos db.Repositories) error {
		finding, err := repos.Findings.Find(logger, req.FindingID)
		if err != nil {
			return err
		}

		from := finding.Status

		if req.ExpectedStatus != "" && req.ExpectedStatus != from {
			return models.ConcurrentModificationError{
				Resource: models.ResourceFinding,
				ID:       finding.ID,
				Expected: string(req.ExpectedStatus),
				Actual:   string(from),
			}
		}

		if !models.CanTransition(from, req.Status) {
			return models.InvalidTransitionError{
				Resource: models.ResourceFinding,
				ID:       finding.ID,
				From:     string(from),
				To:       string(req.Status),
			}
		}

		actor := req.Actor
		changed, err := repos.Findings.UpdateStatus(logger, finding.ID, from, req.Status, &actor)
		if err != nil {
			return err
		}

		if !changed {
			current, err := repos.Findings.Find(logger, finding.ID)
			if err != nil {
				return err
			}

			return models.ConcurrentModificationError{
				Resource: models.ResourceFinding,
				ID:       finding.ID,
				Expected: string(from),
				Actual:   string(current.Status),
			}
		}

		metadata := db.PropertyMap{
			"old_status": string(from),
			"new_status": string(req.Status),
		}
		if req.Notes != "" {
			metadata["notes"] = req.Notes
		}

		err = repos.Audit.Append(logger, &db.AuditEvent{
			ProjectID:    finding.ProjectID,
			UserID:       &actor,
			Action:       models.ActionUpdated,
			ResourceType: models.ResourceFinding,
			ResourceID:   finding.ID,
			Metadata:     metadata,
		})
		if err != nil {
			return err
		}

		updated, err = repos.Findings.Find(logger, finding.ID)
		return err
	})
	if err != nil {
		logger.Info("rejected", lager.Data{"reason": err.Error()})
		return db.Finding{}, err
	}

	return updated, nil
}
