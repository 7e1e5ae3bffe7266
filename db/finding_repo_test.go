package db_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/models"
)

var _ = Describe("FindingRepository", func() {
	var (
		database *gorm.DB
		logger   *lagertest.TestLogger
		clock    *fakeclock.FakeClock
		repo     db.FindingRepository
		project  db.Project
		scan     db.Scan
	)

	BeforeEach(func() {
		database = dbRunner.GormDB()
		logger = lagertest.NewTestLogger("finding-repository")
		clock = fakeclock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
		repo = db.NewFindingRepository(database, clock)

		project = db.Project{Name: "project"}
		Expect(db.NewProjectRepository(database).Create(logger, &project)).To(Succeed())

		scan = db.Scan{ProjectID: project.ID, ScanType: models.ScanTypeManual}
		Expect(db.NewScanRepository(database, clock).Start(logger, &scan)).To(Succeed())
	})

	create := func(variable string, severity models.Severity) db.Finding {
		finding := db.Finding{
			ScanID:        scan.ID,
			ProjectID:     project.ID,
			EnvironmentID: "env-1",
			FindingType:   models.FindingTypeExposedInCode,
			Severity:      severity,
			VariableName:  variable,
			Description:   "description",
		}
		Expect(repo.Create(logger, &finding)).To(Succeed())
		return finding
	}

	It("creates open findings", func() {
		finding := create("API_KEY", models.SeverityHigh)

		saved, err := repo.Find(logger, finding.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(saved.Status).To(Equal(models.FindingStatusOpen))
		Expect(saved.CreatedAt).To(BeTemporally("==", clock.Now()))
		Expect(saved.ResolvedAt).To(BeNil())
	})

	It("returns a not found error for unknown findings", func() {
		_, err := repo.Find(logger, "missing")
		Expect(errors.Is(err, models.ErrNotFound)).To(BeTrue())
	})

	Describe("FindActive", func() {
		It("matches on the dedup key while the finding is active", func() {
			finding := create("API_KEY", models.SeverityHigh)

			found, ok, err := repo.FindActive(logger, finding.Key())
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(found.ID).To(Equal(finding.ID))

			changed, err := repo.UpdateStatus(logger, finding.ID, models.FindingStatusOpen, models.FindingStatusAcknowledged, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			_, ok, err = repo.FindActive(logger, finding.Key())
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			changed, err = repo.UpdateStatus(logger, finding.ID, models.FindingStatusAcknowledged, models.FindingStatusFalsePositive, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			_, ok, err = repo.FindActive(logger, finding.Key())
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("does not match other environments", func() {
			finding := create("API_KEY", models.SeverityHigh)

			key := finding.Key()
			key.EnvironmentID = "env-2"

			_, ok, err := repo.FindActive(logger, key)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Describe("UpdateStatus", func() {
		It("only changes findings still in the expected status", func() {
			finding := create("API_KEY", models.SeverityHigh)

			changed, err := repo.UpdateStatus(logger, finding.ID, models.FindingStatusAcknowledged, models.FindingStatusResolved, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())

			saved, err := repo.Find(logger, finding.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Status).To(Equal(models.FindingStatusOpen))
		})

		It("stamps resolutions", func() {
			finding := create("API_KEY", models.SeverityHigh)
			actor := "user-1"

			clock.Increment(time.Hour)

			changed, err := repo.UpdateStatus(logger, finding.ID, models.FindingStatusOpen, models.FindingStatusResolved, &actor)
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			saved, err := repo.Find(logger, finding.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Status).To(Equal(models.FindingStatusResolved))
			Expect(*saved.ResolvedAt).To(BeTemporally("==", clock.Now()))
			Expect(*saved.ResolvedBy).To(Equal("user-1"))
		})
	})

	Describe("Escalate", func() {
		It("replaces severity and advice", func() {
			finding := create("API_KEY", models.SeverityMedium)

			err := repo.Escalate(logger, finding.ID, models.Detection{
				Severity:       models.SeverityCritical,
				Description:    "worse",
				Recommendation: "rotate now",
				Location:       "production/API_KEY",
			})
			Expect(err).NotTo(HaveOccurred())

			saved, err := repo.Find(logger, finding.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.Severity).To(Equal(models.SeverityCritical))
			Expect(saved.Description).To(Equal("worse"))
			Expect(saved.Recommendation).To(Equal("rotate now"))
		})
	})

	Describe("List", func() {
		It("orders by severity then newest first", func() {
			low := create("LOW", models.SeverityLow)
			clock.Increment(time.Minute)
			olderHigh := create("OLD_HIGH", models.SeverityHigh)
			clock.Increment(time.Minute)
			newerHigh := create("NEW_HIGH", models.SeverityHigh)
			clock.Increment(time.Minute)
			critical := create("CRITICAL", models.SeverityCritical)

			found, err := repo.List(logger, db.FindingFilter{ProjectID: project.ID})
			Expect(err).NotTo(HaveOccurred())

			var ids []string
			for _, f := range found {
				ids = append(ids, f.ID)
			}
			Expect(ids).To(Equal([]string{critical.ID, newerHigh.ID, olderHigh.ID, low.ID}))
		})

		It("filters and pages", func() {
			create("A", models.SeverityHigh)
			clock.Increment(time.Minute)
			b := create("B", models.SeverityHigh)
			create("C", models.SeverityLow)

			found, err := repo.List(logger, db.FindingFilter{
				ProjectID: project.ID,
				Severity:  models.SeverityHigh,
				Status:    models.FindingStatusOpen,
				Limit:     1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].ID).To(Equal(b.ID))

			found, err = repo.List(logger, db.FindingFilter{
				ProjectID: project.ID,
				Severity:  models.SeverityHigh,
				Limit:     1,
				Offset:    1,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].VariableName).To(Equal("A"))
		})
	})
})
