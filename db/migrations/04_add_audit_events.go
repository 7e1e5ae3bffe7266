package migrations

import "github.com/BurntSushi/migration"

// user_id refers to profiles without a foreign key.
func AddAuditEvents(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
		CREATE TABLE audit_events
		(
			 id            VARCHAR(36) PRIMARY KEY,
			 project_id    VARCHAR(36) NOT NULL,
			 user_id       VARCHAR(255) NULL,
			 action        VARCHAR(64) NOT NULL,
			 resource_type VARCHAR(64) NOT NULL,
			 resource_id   VARCHAR(255) NOT NULL DEFAULT '',
			 metadata      TEXT NOT NULL,
			 created_at    DATETIME NOT NULL,
			 FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		)
	`)

	return err
}
