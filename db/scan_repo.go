package db

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"

	"github.com/pivotal-cf/cred-audit/models"
)

//go:generate counterfeiter . ScanRepository

type ScanRepository interface {
	Start(lager.Logger, *Scan) error
	Find(lager.Logger, string) (Scan, error)
	Claim(lager.Logger, string) error
	ListByProject(lager.Logger, string, int, int) ([]Scan, error)
	Finish(lager.Logger, string, models.ScanStatus, PropertyMap, string) (Scan, error)
	RefreshCounters(lager.Logger, string) error
	RunningSince(lager.Logger, time.Time) ([]Scan, error)
}

type scanRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewScanRepository(db *gorm.DB, clock clock.Clock) ScanRepository {
	return &scanRepository{
		db:    db,
		clock: clock,
	}
}

// Start takes the project's scan lock and records the scan as running. It
// returns models.ErrScanInProgress if another scan holds the lock.
func (r *scanRepository) Start(logger lager.Logger, scan *Scan) error {
	logger = logger.Session("start-scan", lager.Data{
		"project": scan.ProjectID,
		"type":    scan.ScanType,
	})
	logger.Debug("starting")

	now := r.clock.Now().UTC()

	if scan.ID == "" {
		scan.ID = uuid.NewV4().String()
	}
	scan.Status = models.ScanStatusRunning
	scan.StartedAt = now
	scan.CreatedAt = now
	scan.UpdatedAt = now
	scan.CompletedAt = nil

	lock := ScanLock{
		ProjectID:  scan.ProjectID,
		ScanID:     scan.ID,
		AcquiredAt: now,
	}

	if err := r.db.Create(&lock).Error; err != nil {
		var held int
		if countErr := r.db.Model(&ScanLock{}).Where("project_id = ?", scan.ProjectID).Count(&held).Error; countErr == nil && held > 0 {
			logger.Info("scan-in-progress")
			return models.ErrScanInProgress
		}

		logger.Error("failed-to-acquire-lock", err)
		return err
	}

	if err := r.db.Create(scan).Error; err != nil {
		logger.Error("failed-to-create-scan", err)
		r.release(logger, scan.ProjectID, scan.ID)
		return err
	}

	logger.Debug("done", lager.Data{"scan": scan.ID})
	return nil
}

func (r *scanRepository) Find(logger lager.Logger, id string) (Scan, error) {
	var scan Scan
	err := r.db.Where("id = ?", id).First(&scan).Error
	if gorm.IsRecordNotFoundError(err) {
		return Scan{}, models.NotFoundError{Resource: models.ResourceScan, ID: id}
	}
	if err != nil {
		logger.Error("failed-to-find-scan", err, lager.Data{"scan": id})
		return Scan{}, err
	}

	return scan, nil
}

// Claim fails with models.ErrScanNotRunning unless the scan is still
// running. Inside a transaction it holds the scan's row until commit, so a
// concurrent Finish waits for the claimant.
func (r *scanRepository) Claim(logger lager.Logger, id string) error {
	update := r.db.Model(&Scan{}).
		Where("id = ? AND status = ?", id, models.ScanStatusRunning).
		UpdateColumn("updated_at", r.clock.Now().UTC())
	if update.Error != nil {
		logger.Error("failed-to-claim-scan", update.Error, lager.Data{"scan": id})
		return update.Error
	}

	if update.RowsAffected == 0 {
		return models.ErrScanNotRunning
	}

	return nil
}

func (r *scanRepository) ListByProject(logger lager.Logger, projectID string, limit, offset int) ([]Scan, error) {
	var scans []Scan
	err := r.db.
		Where("project_id = ?", projectID).
		Order("started_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&scans).Error
	if err != nil {
		logger.Error("failed-to-list-scans", err, lager.Data{"project": projectID})
		return nil, err
	}

	return scans, nil
}

// Finish moves a running scan to its final status, recounts its findings and
// releases the project's lock. A scan that is no longer running keeps its
// status and only has its counters recounted.
func (r *scanRepository) Finish(logger lager.Logger, id string, status models.ScanStatus, results PropertyMap, reason string) (Scan, error) {
	logger = logger.Session("finish-scan", lager.Data{
		"scan":   id,
		"status": status,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	scan, err := r.Find(logger, id)
	if err != nil {
		return Scan{}, err
	}

	counts, err := r.countFindings(id)
	if err != nil {
		logger.Error("failed-to-count-findings", err)
		return Scan{}, err
	}

	now := r.clock.Now().UTC()

	update := r.db.Model(&Scan{}).
		Where("id = ? AND status = ?", id, models.ScanStatusRunning).
		Updates(map[string]interface{}{
			"status":                  status,
			"completed_at":            &now,
			"results":                 results,
			"error":                   reason,
			"critical_findings_count": counts.Critical,
			"high_findings_count":     counts.High,
			"medium_findings_count":   counts.Medium,
			"low_findings_count":      counts.Low,
		})
	if update.Error != nil {
		logger.Error("failed-to-update-scan", update.Error)
		return Scan{}, update.Error
	}

	if update.RowsAffected == 0 {
		if err := r.RefreshCounters(logger, id); err != nil {
			return Scan{}, err
		}

		return scan, models.InvalidTransitionError{
			Resource: models.ResourceScan,
			ID:       id,
			From:     string(scan.Status),
			To:       string(status),
		}
	}

	if err := r.release(logger, scan.ProjectID, id); err != nil {
		return Scan{}, err
	}

	return r.Find(logger, id)
}

// RefreshCounters recomputes the severity counters of a scan from the
// findings it owns.
func (r *scanRepository) RefreshCounters(logger lager.Logger, id string) error {
	counts, err := r.countFindings(id)
	if err != nil {
		logger.Error("failed-to-count-findings", err, lager.Data{"scan": id})
		return err
	}

	err = r.db.Model(&Scan{}).Where("id = ?", id).Updates(map[string]interface{}{
		"critical_findings_count": counts.Critical,
		"high_findings_count":     counts.High,
		"medium_findings_count":   counts.Medium,
		"low_findings_count":      counts.Low,
	}).Error
	if err != nil {
		logger.Error("failed-to-refresh-counters", err, lager.Data{"scan": id})
		return err
	}

	return nil
}

func (r *scanRepository) RunningSince(logger lager.Logger, startedBefore time.Time) ([]Scan, error) {
	var scans []Scan
	err := r.db.
		Where("status = ? AND started_at < ?", models.ScanStatusRunning, startedBefore.UTC()).
		Order("started_at asc").
		Find(&scans).Error
	if err != nil {
		logger.Error("failed-to-find-running-scans", err)
		return nil, err
	}

	return scans, nil
}

func (r *scanRepository) release(logger lager.Logger, projectID, scanID string) error {
	err := r.db.Where("project_id = ? AND scan_id = ?", projectID, scanID).Delete(&ScanLock{}).Error
	if err != nil {
		logger.Error("failed-to-release-lock", err)
	}
	return err
}

type severityCount struct {
	Severity models.Severity
	Total    int
}

func (r *scanRepository) countFindings(scanID string) (models.SeverityCounts, error) {
	var rows []severityCount
	err := r.db.Model(&Finding{}).
		Select("severity, count(*) AS total").
		Where("scan_id = ?", scanID).
		Group("severity").
		Scan(&rows).Error
	if err != nil {
		return models.SeverityCounts{}, err
	}

	var counts models.SeverityCounts
	for _, row := range rows {
		counts.Add(row.Severity, row.Total)
	}

	return counts, nil
}
