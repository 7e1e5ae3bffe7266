package db

import (
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"

	"github.com/pivotal-cf/cred-audit/models"
)

const severityOrder = `CASE severity WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END`

type FindingFilter struct {
	ProjectID string
	ScanID    string
	Status    models.FindingStatus
	Severity  models.Severity
	Limit     int
	Offset    int
}

//go:generate counterfeiter . FindingRepository

type FindingRepository interface {
	Create(lager.Logger, *Finding) error
	Find(lager.Logger, string) (Finding, error)
	FindActive(lager.Logger, models.FindingKey) (Finding, bool, error)
	Escalate(lager.Logger, string, models.Detection) error
	UpdateStatus(lager.Logger, string, models.FindingStatus, models.FindingStatus, *string) (bool, error)
	List(lager.Logger, FindingFilter) ([]Finding, error)
}

type findingRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewFindingRepository(db *gorm.DB, clock clock.Clock) FindingRepository {
	return &findingRepository{
		db:    db,
		clock: clock,
	}
}

func (r *findingRepository) Create(logger lager.Logger, finding *Finding) error {
	now := r.clock.Now().UTC()
	finding.CreatedAt = now
	finding.UpdatedAt = now
	if finding.Status == "" {
		finding.Status = models.FindingStatusOpen
	}

	if err := r.db.Create(finding).Error; err != nil {
		logger.Error("failed-to-create-finding", err, lager.Data{
			"scan":     finding.ScanID,
			"variable": finding.VariableName,
		})
		return err
	}

	return nil
}

func (r *findingRepository) Find(logger lager.Logger, id string) (Finding, error) {
	var finding Finding
	err := r.db.Where("id = ?", id).First(&finding).Error
	if gorm.IsRecordNotFoundError(err) {
		return Finding{}, models.NotFoundError{Resource: models.ResourceFinding, ID: id}
	}
	if err != nil {
		logger.Error("failed-to-find-finding", err, lager.Data{"finding": id})
		return Finding{}, err
	}

	return finding, nil
}

// FindActive returns the newest open or acknowledged finding for key.
func (r *findingRepository) FindActive(logger lager.Logger, key models.FindingKey) (Finding, bool, error) {
	var findings []Finding
	err := r.db.
		Where("project_id = ? AND environment_id = ? AND variable_name = ? AND finding_type = ?",
			key.ProjectID, key.EnvironmentID, key.VariableName, key.FindingType).
		Where("status IN (?)", models.ActiveFindingStatuses).
		Order("created_at desc, id desc").
		Limit(1).
		Find(&findings).Error
	if err != nil {
		logger.Error("failed-to-find-active-finding", err, lager.Data{"variable": key.VariableName})
		return Finding{}, false, err
	}

	if len(findings) == 0 {
		return Finding{}, false, nil
	}

	return findings[0], true, nil
}

// Escalate replaces the severity and advice of an existing finding with the
// ones from a stronger detection.
func (r *findingRepository) Escalate(logger lager.Logger, id string, detection models.Detection) error {
	err := r.db.Model(&Finding{}).Where("id = ?", id).Updates(map[string]interface{}{
		"severity":       detection.Severity,
		"description":    detection.Description,
		"recommendation": detection.Recommendation,
		"location":       detection.Location,
	}).Error
	if err != nil {
		logger.Error("failed-to-escalate-finding", err, lager.Data{"finding": id})
		return err
	}

	return nil
}

// UpdateStatus moves a finding from one status to another only if it is
// still in the from status. It reports whether the row was changed.
func (r *findingRepository) UpdateStatus(logger lager.Logger, id string, from, to models.FindingStatus, actor *string) (bool, error) {
	changes := map[string]interface{}{
		"status": to,
	}

	if to == models.FindingStatusResolved {
		now := r.clock.Now().UTC()
		changes["resolved_at"] = &now
		changes["resolved_by"] = actor
	}

	update := r.db.Model(&Finding{}).Where("id = ? AND status = ?", id, from).Updates(changes)
	if update.Error != nil {
		logger.Error("failed-to-update-finding-status", update.Error, lager.Data{"finding": id})
		return false, update.Error
	}

	return update.RowsAffected == 1, nil
}

// List orders by severity, then newest first.
func (r *findingRepository) List(logger lager.Logger, filter FindingFilter) ([]Finding, error) {
	query := r.db.Model(&Finding{})

	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.ScanID != "" {
		query = query.Where("scan_id = ?", filter.ScanID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var findings []Finding
	err := query.Order(severityOrder).Order("created_at desc, id desc").Find(&findings).Error
	if err != nil {
		logger.Error("failed-to-list-findings", err)
		return nil, err
	}

	return findings, nil
}
