package migrations

import "github.com/BurntSushi/migration"

func AddIndexes(tx migration.LimitedTx) error {
	statements := []string{
		"CREATE INDEX scans_project_idx ON scans(project_id, started_at)",
		"CREATE INDEX findings_dedup_idx ON findings(project_id, environment_id, variable_name, finding_type)",
		"CREATE INDEX findings_scan_idx ON findings(scan_id, severity)",
		"CREATE INDEX leaks_signature_idx ON leaks(signature)",
		"CREATE INDEX leaks_project_idx ON leaks(project_id, resolved_at)",
		"CREATE INDEX audit_events_project_idx ON audit_events(project_id, created_at)",
	}

	for _, statement := range statements {
		if _, err := tx.Exec(statement); err != nil {
			return err
		}
	}

	return nil
}
