package db_test

import (
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/models"
)

var _ = Describe("StatsRepository", func() {
	var (
		database *gorm.DB
		logger   *lagertest.TestLogger
		clock    *fakeclock.FakeClock
		project  db.Project
	)

	BeforeEach(func() {
		database = dbRunner.GormDB()
		logger = lagertest.NewTestLogger("stats")
		clock = fakeclock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

		project = db.Project{Name: "project"}
		Expect(db.NewProjectRepository(database).Create(logger, &project)).To(Succeed())

		scan := db.Scan{ProjectID: project.ID, ScanType: models.ScanTypeManual}
		Expect(db.NewScanRepository(database, clock).Start(logger, &scan)).To(Succeed())

		findings := db.NewFindingRepository(database, clock)
		for _, status := range []models.FindingStatus{models.FindingStatusOpen, models.FindingStatusOpen, models.FindingStatusResolved} {
			Expect(findings.Create(logger, &db.Finding{
				ScanID:       scan.ID,
				ProjectID:    project.ID,
				FindingType:  models.FindingTypeExposedInCode,
				Severity:     models.SeverityHigh,
				VariableName: "X",
				Status:       status,
			})).To(Succeed())
		}

		leaks := db.NewLeakRepository(database, clock)
		for _, leak := range []db.Leak{
			{ProjectID: project.ID, Severity: models.SeverityCritical, Signature: "a"},
			{ProjectID: project.ID, Severity: models.SeverityHigh, Signature: "b"},
			{ProjectID: "other", Severity: models.SeverityHigh, Signature: "c"},
		} {
			leak := leak
			leak.DetectionType = models.DetectionTypeEnvLeak
			Expect(leaks.Create(logger, &leak)).To(Succeed())

			if leak.Signature == "b" {
				_, err := leaks.AutoResolve(logger, leak.ID)
				Expect(err).NotTo(HaveOccurred())
			}
		}
	})

	It("summarises a project", func() {
		stats, err := db.NewStatsRepository(database).SecurityStats(logger, project.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats).To(Equal(db.SecurityStats{
			TotalLeaks:       2,
			UnresolvedLeaks:  1,
			CriticalLeaks:    1,
			HighLeaks:        1,
			TotalFindings:    3,
			OpenFindings:     2,
			ResolvedFindings: 1,
		}))
	})

	It("summarises everything without a project", func() {
		stats, err := db.NewStatsRepository(database).SecurityStats(logger, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(stats.TotalLeaks).To(Equal(3))
		Expect(stats.HighLeaks).To(Equal(2))
	})
})
