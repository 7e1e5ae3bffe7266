package migrations

import "github.com/BurntSushi/migration"

func AddLeaks(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
		CREATE TABLE leaks
		(
			 id                 VARCHAR(36) PRIMARY KEY,
			 project_id         VARCHAR(36) NOT NULL DEFAULT '',
			 scan_id            VARCHAR(36) NOT NULL DEFAULT '',
			 detection_type     VARCHAR(32) NOT NULL,
			 severity           VARCHAR(16) NOT NULL,
			 source             VARCHAR(255) NOT NULL,
			 description        TEXT NOT NULL,
			 leaked_data_sample TEXT NOT NULL,
			 affected_tables    TEXT NOT NULL,
			 affected_users     TEXT NOT NULL,
			 auto_resolved      BOOLEAN NOT NULL DEFAULT 0,
			 resolved_at        DATETIME NULL,
			 resolved_by        VARCHAR(255) NULL,
			 resolution_notes   TEXT NOT NULL,
			 signature          VARCHAR(64) NOT NULL,
			 metadata           TEXT NOT NULL,
			 created_at         DATETIME NOT NULL,
			 updated_at         DATETIME NOT NULL
		)
	`)

	return err
}
