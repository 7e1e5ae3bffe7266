package migrations

import "github.com/BurntSushi/migration"

func AddScansAndFindings(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
		CREATE TABLE scans
		(
			 id                      VARCHAR(36) PRIMARY KEY,
			 project_id              VARCHAR(36) NOT NULL,
			 scan_type               VARCHAR(32) NOT NULL,
			 status                  VARCHAR(32) NOT NULL,
			 triggered_by            VARCHAR(255) NULL,
			 critical_findings_count INT NOT NULL DEFAULT 0,
			 high_findings_count     INT NOT NULL DEFAULT 0,
			 medium_findings_count   INT NOT NULL DEFAULT 0,
			 low_findings_count      INT NOT NULL DEFAULT 0,
			 rules_version           INT NOT NULL DEFAULT 0,
			 results                 TEXT NOT NULL,
			 error                   TEXT NOT NULL,
			 started_at              DATETIME NOT NULL,
			 completed_at            DATETIME NULL,
			 created_at              DATETIME NOT NULL,
			 updated_at              DATETIME NOT NULL,
			 FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE findings
		(
			 id             VARCHAR(36) PRIMARY KEY,
			 scan_id        VARCHAR(36) NOT NULL,
			 project_id     VARCHAR(36) NOT NULL,
			 environment_id VARCHAR(36) NOT NULL DEFAULT '',
			 finding_type   VARCHAR(32) NOT NULL,
			 severity       VARCHAR(16) NOT NULL,
			 variable_name  VARCHAR(255) NOT NULL,
			 location       TEXT NOT NULL,
			 description    TEXT NOT NULL,
			 recommendation TEXT NOT NULL,
			 status         VARCHAR(32) NOT NULL,
			 resolved_at    DATETIME NULL,
			 resolved_by    VARCHAR(255) NULL,
			 created_at     DATETIME NOT NULL,
			 updated_at     DATETIME NOT NULL,
			 FOREIGN KEY (scan_id) REFERENCES scans(id) ON DELETE CASCADE
		)
	`)

	return err
}
