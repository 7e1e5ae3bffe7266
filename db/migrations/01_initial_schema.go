package migrations

import "github.com/BurntSushi/migration"

func InitialSchema(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
		CREATE TABLE projects
		(
			 id         VARCHAR(36) PRIMARY KEY,
			 name       VARCHAR(255) NOT NULL,
			 created_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE profiles
		(
			 id         VARCHAR(36) PRIMARY KEY,
			 email      VARCHAR(255) NOT NULL,
			 full_name  VARCHAR(255) NOT NULL,
			 created_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE environments
		(
			 id         VARCHAR(36) PRIMARY KEY,
			 project_id VARCHAR(36) NOT NULL,
			 name       VARCHAR(255) NOT NULL,
			 created_at DATETIME NOT NULL,
			 FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		CREATE TABLE secrets
		(
			 id             VARCHAR(36) PRIMARY KEY,
			 environment_id VARCHAR(36) NOT NULL,
			 name           VARCHAR(255) NOT NULL,
			 value          TEXT NOT NULL,
			 created_at     DATETIME NOT NULL,
			 UNIQUE (environment_id, name),
			 FOREIGN KEY (environment_id) REFERENCES environments(id) ON DELETE CASCADE
		)
	`)

	return err
}
