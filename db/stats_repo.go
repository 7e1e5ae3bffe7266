package db

import (
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"

	"github.com/pivotal-cf/cred-audit/models"
)

type SecurityStats struct {
	TotalLeaks       int `json:"total_leaks"`
	UnresolvedLeaks  int `json:"unresolved_leaks"`
	CriticalLeaks    int `json:"critical_leaks"`
	HighLeaks        int `json:"high_leaks"`
	TotalFindings    int `json:"total_findings"`
	OpenFindings     int `json:"open_findings"`
	ResolvedFindings int `json:"resolved_findings"`
}

//go:generate counterfeiter . StatsRepository

type StatsRepository interface {
	SecurityStats(lager.Logger, string) (SecurityStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// SecurityStats covers one project, or every project when projectID is
// empty.
func (r *statsRepository) SecurityStats(logger lager.Logger, projectID string) (SecurityStats, error) {
	logger = logger.Session("security-stats", lager.Data{"project": projectID})

	scoped := func(model interface{}) *gorm.DB {
		query := r.db.Model(model)
		if projectID != "" {
			query = query.Where("project_id = ?", projectID)
		}
		return query
	}

	var stats SecurityStats

	counts := []struct {
		target *int
		query  *gorm.DB
	}{
		{&stats.TotalLeaks, scoped(&Leak{})},
		{&stats.UnresolvedLeaks, scoped(&Leak{}).Where("resolved_at IS NULL")},
		{&stats.CriticalLeaks, scoped(&Leak{}).Where("severity = ?", models.SeverityCritical)},
		{&stats.HighLeaks, scoped(&Leak{}).Where("severity = ?", models.SeverityHigh)},
		{&stats.TotalFindings, scoped(&Finding{})},
		{&stats.OpenFindings, scoped(&Finding{}).Where("status = ?", models.FindingStatusOpen)},
		{&stats.ResolvedFindings, scoped(&Finding{}).Where("status = ?", models.FindingStatusResolved)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.target).Error; err != nil {
			logger.Error("failed-to-count", err)
			return SecurityStats{}, err
		}
	}

	return stats, nil
}
