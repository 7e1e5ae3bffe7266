package commands

import "fmt"

type MigrateCommand struct {
	DatabaseOptions

	Debug bool `long:"debug" description:"enables debug logging"`
}

func (command *MigrateCommand) Execute(args []string) error {
	logger := newLogger("migrate", command.Debug)

	database, err := command.open(logger)
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Println(green("Database is up to date."))

	return nil
}
