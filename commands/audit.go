package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"github.com/olekukonko/tablewriter"

	"github.com/pivotal-cf/cred-audit/audit"
	"github.com/pivotal-cf/cred-audit/db"
)

type AuditCommand struct {
	DatabaseOptions

	Project string `short:"p" long:"project" description:"project id" value-name:"ID" required:"true"`
	Search  string `short:"q" long:"search" description:"match action, resource type or user" value-name:"TEXT"`
	Action  string `long:"action" description:"only show this action, or all" value-name:"ACTION" default:"all"`
	Limit   int    `long:"limit" description:"page size" value-name:"N" default:"50"`
	Offset  int    `long:"offset" description:"entries to skip" value-name:"N"`
	Debug   bool   `long:"debug" description:"enables debug logging"`
}

func (command *AuditCommand) Execute(args []string) error {
	logger := newLogger("audit", command.Debug)

	database, err := command.open(logger)
	if err != nil {
		return err
	}
	defer database.Close()

	store := db.NewStore(database, clock.NewClock())
	log := audit.NewLog(store.Repositories().Audit, store.Profiles())

	entries, err := log.Query(logger, command.Project, audit.Filter{
		Search: command.Search,
		Action: command.Action,
	}, audit.Page{
		Limit:  command.Limit,
		Offset: command.Offset,
	})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No audit events found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "User", "Action", "Resource Type", "Resource"})
	table.SetAutoWrapText(false)

	for _, e := range entries {
		table.Append([]string{
			e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			e.User,
			e.Action,
			e.ResourceType,
			e.ResourceID,
		})
	}

	table.Render()

	return nil
}
