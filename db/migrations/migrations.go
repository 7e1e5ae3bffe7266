package migrations

import "github.com/BurntSushi/migration"

// Migrations lists the schema changes for driver in order. Every driver gets
// the same number of steps so versions line up.
func Migrations(driver string) []migration.Migrator {
	return []migration.Migrator{
		InitialSchema,
		AddScansAndFindings,
		AddLeaks,
		AddAuditEvents,
		AddScanLocks,
		AddIndexes,
		UseMicrosecondTimestamps(driver),
	}
}
