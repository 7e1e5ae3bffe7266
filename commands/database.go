package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"

	"github.com/pivotal-cf/cred-audit/config"
	"github.com/pivotal-cf/cred-audit/db/migrations"
)

type DatabaseOptions struct {
	config.DatabaseConfig `group:"Database Options"`
}

// open migrates the database before handing it out.
func (o *DatabaseOptions) open(logger lager.Logger) (*gorm.DB, error) {
	if errs := o.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}

	driver, dsn := o.DSN()

	database, err := migrations.LockDBAndMigrate(logger, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.LogMode(false)

	return database, nil
}
