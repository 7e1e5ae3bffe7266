// Package dbrunner gives test suites a migrated SQLite database that lives in
// memory for the duration of the suite.
package dbrunner

import (
	"fmt"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/jinzhu/gorm"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/db/migrations"
)

var tables = []string{
	"audit_events",
	"scan_locks",
	"leaks",
	"findings",
	"scans",
	"secrets",
	"environments",
	"profiles",
	"projects",
}

type Runner struct {
	DBName string

	database *gorm.DB
}

func (runner *Runner) Setup() {
	logger := lagertest.NewTestLogger("dbrunner-setup")

	database, err := migrations.LockDBAndMigrate(logger, db.DriverSQLite, runner.DataSourceName())
	Expect(err).NotTo(HaveOccurred())

	runner.database = database
}

func (runner *Runner) Teardown() {
	Expect(runner.database.Close()).To(Succeed())
}

// GormDB shares the suite's single connection.
func (runner *Runner) GormDB() *gorm.DB {
	return runner.database
}

func (runner *Runner) DataSourceName() string {
	return db.NewSQLiteDSN(fmt.Sprintf("memory:%s", runner.DBName))
}

func (runner *Runner) Truncate() {
	for _, table := range tables {
		err := runner.database.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error
		Expect(err).NotTo(HaveOccurred())
	}
}
