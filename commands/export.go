package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/clock"

	"github.com/pivotal-cf/cred-audit/audit"
	"github.com/pivotal-cf/cred-audit/db"
)

type ExportCommand struct {
	DatabaseOptions

	Project string `short:"p" long:"project" description:"project id" value-name:"ID" required:"true"`
	Search  string `short:"q" long:"search" description:"match action, resource type or user" value-name:"TEXT"`
	Action  string `long:"action" description:"only export this action, or all" value-name:"ACTION" default:"all"`
	Dir     string `short:"d" long:"dir" description:"directory to write the CSV file to" value-name:"PATH" default:"."`
	Debug   bool   `long:"debug" description:"enables debug logging"`
}

func (command *ExportCommand) Execute(args []string) error {
	logger := newLogger("export", command.Debug)

	database, err := command.open(logger)
	if err != nil {
		return err
	}
	defer database.Close()

	clk := clock.NewClock()
	store := db.NewStore(database, clk)
	log := audit.NewLog(store.Repositories().Audit, store.Profiles())

	path := filepath.Join(command.Dir, audit.ExportFilename(command.Project, clk.Now()))

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = log.Export(logger, file, command.Project, audit.Filter{
		Search: command.Search,
		Action: command.Action,
	})
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return err
	}

	fmt.Println(green("Exported"), path)

	return nil
}
