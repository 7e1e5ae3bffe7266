package leaks

import (
	"errors"
	"fmt"
	"sort"

	"code.cloudfoundry.org/lager"
	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/redact"
)

const sampleField = "leaked_data_sample"

// SyncResult counts what one scan did to the leak stream.
type SyncResult struct {
	Registered   int
	Existing     int
	AutoResolved int
	Leaks        []db.Leak
}

//go:generate counterfeiter . Registry

type Registry interface {
	Register(lager.Logger, models.LeakSignal) (db.Leak, error)
	Sync(lager.Logger, db.Scan, []models.LeakSignal, bool) (SyncResult, error)
	AutoResolve(lager.Logger, string) (db.Leak, error)
	Resolve(lager.Logger, string, string, string) (db.Leak, error)
}

type registry struct {
	store db.Transactor
}

func NewRegistry(store db.Transactor) Registry {
	return &registry{store: store}
}

// Signature identifies the condition behind a signal so that the same
// exposure maps to the same leak across scans.
func Signature(signal models.LeakSignal) string {
	h := xxhash.New()
	for _, part := range []string{signal.ProjectID, string(signal.DetectionType), signal.Key} {
		_, _ = h.WriteString(part)
		_, _ = h.WriteString("|")
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

func (r *registry) Register(logger lager.Logger, signal models.LeakSignal) (db.Leak, error) {
	logger = logger.Session("register-leak", lager.Data{
		"project":        signal.ProjectID,
		"detection-type": signal.DetectionType,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	var leak db.Leak

	err := r.store.Transact(logger, func(repos db.Repositories) error {
		var err error
		leak, _, err = register(logger, repos, "", nil, signal)
		return err
	})
	if err != nil {
		return db.Leak{}, err
	}

	return leak, nil
}

// Sync registers every signal from a scan. When complete is true the scan
// covered the whole project, so unresolved leaks it no longer observed are
// resolved automatically.
func (r *registry) Sync(logger lager.Logger, scan db.Scan, signals []models.LeakSignal, complete bool) (SyncResult, error) {
	logger = logger.Session("sync-leaks", lager.Data{
		"scan":     scan.ID,
		"project":  scan.ProjectID,
		"signals":  len(signals),
		"complete": complete,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	var result SyncResult

	err := r.store.Transact(logger, func(repos db.Repositories) error {
		if err := repos.Scans.Claim(logger, scan.ID); err != nil {
			return err
		}

		observed := mapset.NewSet()

		for _, signal := range signals {
			if signal.ProjectID == "" {
				signal.ProjectID = scan.ProjectID
			}

			leak, created, err := register(logger, repos, scan.ID, scan.TriggeredBy, signal)
			if err != nil {
				return err
			}

			if observed.Contains(leak.Signature) {
				continue
			}
			observed.Add(leak.Signature)

			if created {
				result.Registered++
			} else {
				result.Existing++
			}
			result.Leaks = append(result.Leaks, leak)
		}

		if !complete {
			return nil
		}

		unresolved, err := repos.Leaks.ListUnresolved(logger, scan.ProjectID)
		if err != nil {
			return err
		}

		open := mapset.NewSet()
		byID := map[string]db.Leak{}
		for _, leak := range unresolved {
			if observed.Contains(leak.Signature) {
				continue
			}
			open.Add(leak.ID)
			byID[leak.ID] = leak
		}

		for _, id := range sortedStrings(open) {
			if _, err := autoResolve(logger, repos, byID[id]); err != nil {
				return err
			}
			result.AutoResolved++
		}

		return nil
	})
	if errors.Is(err, models.ErrScanNotRunning) {
		logger.Info("scan-no-longer-running")
		return SyncResult{}, err
	}
	if err != nil {
		logger.Error("failed-to-sync-leaks", err)
		return SyncResult{}, err
	}

	return result, nil
}

func (r *registry) AutoResolve(logger lager.Logger, id string) (db.Leak, error) {
	logger = logger.Session("auto-resolve-leak", lager.Data{"leak": id})

	var leak db.Leak

	err := r.store.Transact(logger, func(repos db.Repositories) error {
		existing, err := repos.Leaks.Find(logger, id)
		if err != nil {
			return err
		}

		leak, err = autoResolve(logger, repos, existing)
		return err
	})
	if err != nil {
		return db.Leak{}, err
	}

	return leak, nil
}

// Resolve records a human resolution, overriding an automatic one.
func (r *registry) Resolve(logger lager.Logger, id, actor, notes string) (db.Leak, error) {
	logger = logger.Session("resolve-leak", lager.Data{"leak": id})
	logger.Debug("starting")
	defer logger.Debug("done")

	var leak db.Leak

	err := r.store.Transact(logger, func(repos db.Repositories) error {
		existing, err := repos.Leaks.Find(logger, id)
		if err != nil {
			return err
		}

		if existing.Resolved() && !existing.AutoResolved {
			return models.InvalidTransitionError{
				Resource: models.ResourceLeak,
				ID:       id,
				From:     "resolved",
				To:       "resolved",
			}
		}

		changed, err := repos.Leaks.Resolve(logger, id, actor, notes)
		if err != nil {
			return err
		}

		if !changed {
			return models.ConcurrentModificationError{
				Resource: models.ResourceLeak,
				ID:       id,
				Expected: leakState(existing),
				Actual:   "resolved",
			}
		}

		previous := leakState(existing)

		if existing.ProjectID != "" {
			metadata := db.PropertyMap{
				"previous_state": previous,
				"resolution":     "manual",
			}
			if notes != "" {
				metadata["notes"] = notes
			}

			err = repos.Audit.Append(logger, &db.AuditEvent{
				ProjectID:    existing.ProjectID,
				UserID:       &actor,
				Action:       models.ActionUpdated,
				ResourceType: models.ResourceLeak,
				ResourceID:   id,
				Metadata:     metadata,
			})
			if err != nil {
				return err
			}
		}

		leak, err = repos.Leaks.Find(logger, id)
		return err
	})
	if err != nil {
		logger.Info("rejected", lager.Data{"reason": err.Error()})
		return db.Leak{}, err
	}

	return leak, nil
}

func register(logger lager.Logger, repos db.Repositories, scanID string, actor *string, signal models.LeakSignal) (db.Leak, bool, error) {
	if err := redact.Verify(sampleField, signal.Sample); err != nil {
		logger.Error("refused-unredacted-sample", err)
		return db.Leak{}, false, err
	}

	if !signal.Severity.Valid() {
		return db.Leak{}, false, fmt.Errorf("invalid leak severity: %q", signal.Severity)
	}

	signature := Signature(signal)

	existing, found, err := repos.Leaks.FindUnresolved(logger, signature)
	if err != nil {
		return db.Leak{}, false, err
	}

	if found {
		logger.Debug("already-registered", lager.Data{"leak": existing.ID})
		return existing, false, nil
	}

	leak := db.Leak{
		ProjectID:        signal.ProjectID,
		ScanID:           scanID,
		DetectionType:    signal.DetectionType,
		Severity:         signal.Severity,
		Source:           signal.Source,
		Description:      signal.Description,
		LeakedDataSample: signal.Sample,
		AffectedTables:   signal.AffectedTables,
		AffectedUsers:    signal.AffectedUsers,
		Signature:        signature,
		Metadata:         db.PropertyMap(signal.Metadata),
	}

	if err := repos.Leaks.Create(logger, &leak); err != nil {
		return db.Leak{}, false, err
	}

	if leak.ProjectID != "" {
		err = repos.Audit.Append(logger, &db.AuditEvent{
			ProjectID:    leak.ProjectID,
			UserID:       actor,
			Action:       models.ActionCreated,
			ResourceType: models.ResourceLeak,
			ResourceID:   leak.ID,
			Metadata: db.PropertyMap{
				"scan_id":        scanID,
				"detection_type": string(leak.DetectionType),
				"severity":       string(leak.Severity),
				"source":         leak.Source,
			},
		})
		if err != nil {
			return db.Leak{}, false, err
		}
	}

	return leak, true, nil
}

func autoResolve(logger lager.Logger, repos db.Repositories, leak db.Leak) (db.Leak, error) {
	changed, err := repos.Leaks.AutoResolve(logger, leak.ID)
	if err != nil {
		return db.Leak{}, err
	}

	if !changed {
		return db.Leak{}, models.InvalidTransitionError{
			Resource: models.ResourceLeak,
			ID:       leak.ID,
			From:     "resolved",
			To:       "auto_resolved",
		}
	}

	if leak.ProjectID != "" {
		err = repos.Audit.Append(logger, &db.AuditEvent{
			ProjectID:    leak.ProjectID,
			Action:       models.ActionUpdated,
			ResourceType: models.ResourceLeak,
			ResourceID:   leak.ID,
			Metadata: db.PropertyMap{
				"previous_state": "unresolved",
				"resolution":     "automatic",
			},
		})
		if err != nil {
			return db.Leak{}, err
		}
	}

	return repos.Leaks.Find(logger, leak.ID)
}

func leakState(leak db.Leak) string {
	switch {
	case !leak.Resolved():
		return "unresolved"
	case leak.AutoResolved:
		return "auto_resolved"
	default:
		return "resolved"
	}
}

func sortedStrings(set mapset.Set) []string {
	var values []string
	for v := range set.Iter() {
		values = append(values, v.(string))
	}

	sort.Strings(values)
	return values
}
