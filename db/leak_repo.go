package db

import (
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"

	"github.com/pivotal-cf/cred-audit/models"
)

type LeakFilter struct {
	ProjectID  string
	Severity   models.Severity
	Unresolved bool
	Limit      int
	Offset     int
}

//go:generate counterfeiter . LeakRepository

type LeakRepository interface {
	Create(lager.Logger, *Leak) error
	Find(lager.Logger, string) (Leak, error)
	FindUnresolved(lager.Logger, string) (Leak, bool, error)
	ListUnresolved(lager.Logger, string) ([]Leak, error)
	AutoResolve(lager.Logger, string) (bool, error)
	Resolve(lager.Logger, string, string, string) (bool, error)
	List(lager.Logger, LeakFilter) ([]Leak, error)
}

type leakRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewLeakRepository(db *gorm.DB, clock clock.Clock) LeakRepository {
	return &leakRepository{
		db:    db,
		clock: clock,
	}
}

func (r *leakRepository) Create(logger lager.Logger, leak *Leak) error {
	now := r.clock.Now().UTC()
	leak.CreatedAt = now
	leak.UpdatedAt = now

	if err := r.db.Create(leak).Error; err != nil {
		logger.Error("failed-to-create-leak", err, lager.Data{
			"project":   leak.ProjectID,
			"signature": leak.Signature,
		})
		return err
	}

	return nil
}

func (r *leakRepository) Find(logger lager.Logger, id string) (Leak, error) {
	var leak Leak
	err := r.db.Where("id = ?", id).First(&leak).Error
	if gorm.IsRecordNotFoundError(err) {
		return Leak{}, models.NotFoundError{Resource: models.ResourceLeak, ID: id}
	}
	if err != nil {
		logger.Error("failed-to-find-leak", err, lager.Data{"leak": id})
		return Leak{}, err
	}

	return leak, nil
}

// FindUnresolved looks up the open leak carrying signature.
func (r *leakRepository) FindUnresolved(logger lager.Logger, signature string) (Leak, bool, error) {
	var leaks []Leak
	err := r.db.
		Where("signature = ? AND resolved_at IS NULL", signature).
		Order("created_at desc, id desc").
		Limit(1).
		Find(&leaks).Error
	if err != nil {
		logger.Error("failed-to-find-unresolved-leak", err, lager.Data{"signature": signature})
		return Leak{}, false, err
	}

	if len(leaks) == 0 {
		return Leak{}, false, nil
	}

	return leaks[0], true, nil
}

func (r *leakRepository) ListUnresolved(logger lager.Logger, projectID string) ([]Leak, error) {
	var leaks []Leak
	err := r.db.
		Where("project_id = ? AND resolved_at IS NULL", projectID).
		Order("created_at asc, id asc").
		Find(&leaks).Error
	if err != nil {
		logger.Error("failed-to-list-unresolved-leaks", err, lager.Data{"project": projectID})
		return nil, err
	}

	return leaks, nil
}

// AutoResolve closes a leak without a human resolver. Only unresolved leaks
// change.
func (r *leakRepository) AutoResolve(logger lager.Logger, id string) (bool, error) {
	now := r.clock.Now().UTC()

	update := r.db.Model(&Leak{}).
		Where("id = ? AND resolved_at IS NULL", id).
		Updates(map[string]interface{}{
			"auto_resolved": true,
			"resolved_at":   &now,
		})
	if update.Error != nil {
		logger.Error("failed-to-auto-resolve-leak", update.Error, lager.Data{"leak": id})
		return false, update.Error
	}

	return update.RowsAffected == 1, nil
}

// Resolve records a human resolution. It applies to unresolved leaks and to
// leaks that were only resolved automatically.
func (r *leakRepository) Resolve(logger lager.Logger, id, actor, notes string) (bool, error) {
	now := r.clock.Now().UTC()

	update := r.db.Model(&Leak{}).
		Where("id = ? AND (resolved_at IS NULL OR auto_resolved = ?)", id, true).
		Updates(map[string]interface{}{
			"auto_resolved":    false,
			"resolved_at":      &now,
			"resolved_by":      &actor,
			"resolution_notes": notes,
		})
	if update.Error != nil {
		logger.Error("failed-to-resolve-leak", update.Error, lager.Data{"leak": id})
		return false, update.Error
	}

	return update.RowsAffected == 1, nil
}

// List orders by severity, then newest first.
func (r *leakRepository) List(logger lager.Logger, filter LeakFilter) ([]Leak, error) {
	query := r.db.Model(&Leak{})

	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.Unresolved {
		query = query.Where("resolved_at IS NULL")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var leaks []Leak
	err := query.Order(severityOrder).Order("created_at desc, id desc").Find(&leaks).Error
	if err != nil {
		logger.Error("failed-to-list-leaks", err)
		return nil, err
	}

	return leaks, nil
}
