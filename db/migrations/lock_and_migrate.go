package migrations

import (
	"database/sql"
	"hash/crc32"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/BurntSushi/migration"
	"github.com/jinzhu/gorm"

	"github.com/pivotal-cf/cred-audit/db"
)

// LockDBAndMigrate brings the schema up to date and opens the database. On
// MySQL concurrent callers serialize on a named lock. SQLite databases are
// opened before migrating so that a shared in-memory database survives the
// migration connection closing.
func LockDBAndMigrate(logger lager.Logger, driver, dbURI string) (*gorm.DB, error) {
	logger = logger.Session("lock-db-and-migrate", lager.Data{"driver": driver})
	logger.Debug("starting")

	if driver == db.DriverSQLite {
		database, err := open(driver, dbURI)
		if err != nil {
			logger.Error("failed", err)
			return nil, err
		}

		if err := migrate(logger, driver, dbURI); err != nil {
			database.Close()
			return nil, err
		}

		logger.Debug("done")
		return database, nil
	}

	lockDB, err := dbOpen(logger, driver, dbURI)
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}
	defer lockDB.Close()

	lockName := crc32.ChecksumIEEE([]byte(driver + dbURI))

	for {
		logger.Info("acquiring-lock")
		var result int
		err := lockDB.QueryRow(`SELECT GET_LOCK(?, 5);`, lockName).Scan(&result)
		if err != nil {
			return nil, err
		}

		if result != 1 {
			continue
		}

		defer func() {
			logger.Info("releasing-lock")
			_, err = lockDB.Exec(`SELECT RELEASE_LOCK(?)`, lockName)
			if err != nil {
				logger.Error("failed-to-release-lock", err)
			}
		}()

		if err := migrate(logger, driver, dbURI); err != nil {
			return nil, err
		}

		break
	}

	logger.Debug("done")

	return open(driver, dbURI)
}

func migrate(logger lager.Logger, driver, dbURI string) error {
	logger.Info("migrating")

	migrated, err := migration.OpenWith(driver, dbURI, Migrations(driver), migration.DefaultGetVersion, setVersion)
	if err != nil {
		logger.Error("failed-to-migrate", err)
		return err
	}

	return migrated.Close()
}

func open(driver, dbURI string) (*gorm.DB, error) {
	database, err := gorm.Open(driver, dbURI)
	if err != nil {
		return nil, err
	}

	database.LogMode(false)

	if driver == db.DriverSQLite {
		database.DB().SetMaxOpenConns(1)
	}

	return database, nil
}

func dbOpen(logger lager.Logger, driver, dbURI string) (*sql.DB, error) {
	var err error
	var lockDB *sql.DB

	logger = logger.Session("db-open")
	logger.Debug("starting")

	for {
		lockDB, err = sql.Open(driver, dbURI)
		if err != nil {
			if strings.Contains(err.Error(), " dial ") {
				logger.Error("retrying", err)
				time.Sleep(5 * time.Second)
				continue
			}
			logger.Error("failed", err)
			return nil, err
		}

		break
	}

	logger.Debug("done")
	return lockDB, err
}

func setVersion(tx migration.LimitedTx, version int) error {
	_, err := tx.Exec("UPDATE migration_version SET version = ?", version)
	return err
}
