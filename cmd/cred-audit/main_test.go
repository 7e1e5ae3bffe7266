package main_test

import (
	"encoding/csv"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/archiver/compressor"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/db/migrations"
)

var _ = Describe("cred-audit", func() {
	var (
		workDir string
		session *gexec.Session
	)

	token := "ghp_" + strings.Repeat("a1", 18)

	BeforeEach(func() {
		var err error
		workDir, err = ioutil.TempDir("", "cred-audit-cli")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(workDir)
	})

	run := func(args ...string) {
		cmd := exec.Command(cliPath, args...)

		var err error
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, "10s").Should(gexec.Exit())
	}

	writeEnv := func(root, environment, contents string) {
		dir := filepath.Join(root, environment)
		Expect(os.MkdirAll(dir, 0755)).To(Succeed())
		Expect(ioutil.WriteFile(filepath.Join(dir, ".env"), []byte(contents), 0600)).To(Succeed())
	}

	Describe("scan", func() {
		var backupDir string

		BeforeEach(func() {
			backupDir = filepath.Join(workDir, "backup")
		})

		Context("when the backup holds an exposed token", func() {
			BeforeEach(func() {
				writeEnv(backupDir, "production", "GITHUB_TOKEN="+token+"\nPORT=8080\n")
				writeEnv(backupDir, "development", "LOG_LEVEL=debug\n")
			})

			It("reports it without printing the value and exits 3", func() {
				run("scan", "--archive", backupDir, "--no-color")

				Expect(session.ExitCode()).To(Equal(3))
				Expect(session.Out).To(gbytes.Say("Scanned 3 variables in 2 environments"))
				Expect(session.Out).To(gbytes.Say("critical"))
				Expect(session.Out).To(gbytes.Say("production/GITHUB_TOKEN"))
				Expect(session.Out).To(gbytes.Say(`\[EXPOSED\]`))

				Expect(string(session.Out.Contents())).NotTo(ContainSubstring(token))
			})

			It("reads the same backup from a tgz", func() {
				archive := filepath.Join(workDir, "backup.tgz")
				Expect(compressor.NewTgz().Compress(backupDir, archive)).To(Succeed())

				run("scan", "--archive", archive, "--no-color")

				Expect(session.ExitCode()).To(Equal(3))
				Expect(string(session.Out.Contents())).NotTo(ContainSubstring(token))
			})
		})

		Context("when two rules report the same variable", func() {
			BeforeEach(func() {
				writeEnv(backupDir, "development", "EXPOSED_API_KEY=orbit-lantern-basil-42\n")
			})

			It("still lists the leak raised by either of them", func() {
				run("scan", "--archive", backupDir, "--no-color")

				Expect(session.ExitCode()).To(Equal(3))
				Expect(session.Out).To(gbytes.Say("development/EXPOSED_API_KEY"))
				Expect(session.Out).To(gbytes.Say("env_leak"))
				Expect(string(session.Out.Contents())).NotTo(ContainSubstring("orbit-lantern-basil-42"))
			})
		})

		Context("when the backup is clean", func() {
			BeforeEach(func() {
				writeEnv(backupDir, "development", "LOG_LEVEL=debug\nPORT=8080\n")
			})

			It("exits 0", func() {
				run("scan", "--archive", backupDir, "--no-color")

				Expect(session.ExitCode()).To(Equal(0))
				Expect(session.Out).To(gbytes.Say("No exposures found."))
			})
		})

		Context("when the archive does not exist", func() {
			It("exits 1", func() {
				run("scan", "--archive", filepath.Join(workDir, "missing.tgz"))

				Expect(session.ExitCode()).To(Equal(1))
			})
		})

		It("requires an archive", func() {
			run("scan")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("archive"))
		})
	})

	Describe("audit and export", func() {
		var (
			sqlitePath string
			project    db.Project
		)

		BeforeEach(func() {
			sqlitePath = filepath.Join(workDir, "cred-audit.db")

			logger := lagertest.NewTestLogger("cli")
			database, err := migrations.LockDBAndMigrate(logger, db.DriverSQLite, db.NewSQLiteDSN(sqlitePath))
			Expect(err).NotTo(HaveOccurred())
			defer database.Close()

			store := db.NewStore(database, clock.NewClock())
			project = db.Project{Name: "project"}
			Expect(store.Projects().Create(logger, &project)).To(Succeed())

			user := "user-1"
			for _, action := range []string{"viewed", "exported"} {
				Expect(store.Repositories().Audit.Append(logger, &db.AuditEvent{
					ProjectID:    project.ID,
					UserID:       &user,
					Action:       action,
					ResourceType: "secret",
				})).To(Succeed())
			}
		})

		It("migrates the database", func() {
			run("migrate", "--sqlite-path", sqlitePath)

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("Database is up to date."))
		})

		It("lists the audit log", func() {
			run("audit", "--sqlite-path", sqlitePath, "--project", project.ID, "--action", "viewed")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("viewed"))
			Expect(string(session.Out.Contents())).NotTo(ContainSubstring("exported"))
		})

		It("exports the audit log as CSV", func() {
			run("export", "--sqlite-path", sqlitePath, "--project", project.ID, "--dir", workDir)

			Expect(session.ExitCode()).To(Equal(0))

			matches, err := filepath.Glob(filepath.Join(workDir, "audit-logs-"+project.ID+"-*.csv"))
			Expect(err).NotTo(HaveOccurred())
			Expect(matches).To(HaveLen(1))

			file, err := os.Open(matches[0])
			Expect(err).NotTo(HaveOccurred())
			defer file.Close()

			records, err := csv.NewReader(file).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0]).To(Equal([]string{"Date", "User", "Action", "Resource Type", "Details"}))
		})
	})
})
