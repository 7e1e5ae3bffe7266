package commands

type CredAuditCommand struct {
	Scan    ScanCommand    `command:"scan" description:"Scan an exported project backup for exposed secrets"`
	Migrate MigrateCommand `command:"migrate" description:"Bring the database schema up to date"`
	Audit   AuditCommand   `command:"audit" description:"List a project's audit log"`
	Export  ExportCommand  `command:"export" description:"Export a project's audit log as CSV"`
}

var CredAudit CredAuditCommand
