package migrations

import "github.com/BurntSushi/migration"

func AddScanLocks(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
		CREATE TABLE scan_locks
		(
			 project_id  VARCHAR(36) PRIMARY KEY,
			 scan_id     VARCHAR(36) NOT NULL,
			 acquired_at DATETIME NOT NULL,
			 FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		)
	`)

	return err
}
