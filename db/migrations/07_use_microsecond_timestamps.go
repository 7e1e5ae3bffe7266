package migrations

import (
	"github.com/BurntSushi/migration"

	"github.com/pivotal-cf/cred-audit/db"
)

// UseMicrosecondTimestamps widens MySQL DATETIME columns to microseconds so
// that rows written within the same second keep their order. SQLite already
// stores the full timestamp text and is left alone.
func UseMicrosecondTimestamps(driver string) migration.Migrator {
	return func(tx migration.LimitedTx) error {
		if driver != db.DriverMySQL {
			return nil
		}

		statements := []string{
			"ALTER TABLE projects MODIFY created_at DATETIME(6) NOT NULL",
			"ALTER TABLE profiles MODIFY created_at DATETIME(6) NOT NULL",
			"ALTER TABLE environments MODIFY created_at DATETIME(6) NOT NULL",
			"ALTER TABLE secrets MODIFY created_at DATETIME(6) NOT NULL",
			`ALTER TABLE scans
				MODIFY started_at DATETIME(6) NOT NULL,
				MODIFY completed_at DATETIME(6) NULL,
				MODIFY created_at DATETIME(6) NOT NULL,
				MODIFY updated_at DATETIME(6) NOT NULL`,
			`ALTER TABLE findings
				MODIFY resolved_at DATETIME(6) NULL,
				MODIFY created_at DATETIME(6) NOT NULL,
				MODIFY updated_at DATETIME(6) NOT NULL`,
			`ALTER TABLE leaks
				MODIFY resolved_at DATETIME(6) NULL,
				MODIFY created_at DATETIME(6) NOT NULL,
				MODIFY updated_at DATETIME(6) NOT NULL`,
			"ALTER TABLE audit_events MODIFY created_at DATETIME(6) NOT NULL",
			"ALTER TABLE scan_locks MODIFY acquired_at DATETIME(6) NOT NULL",
		}

		for _, statement := range statements {
			if _, err := tx.Exec(statement); err != nil {
				return err
			}
		}

		return nil
	}
}
