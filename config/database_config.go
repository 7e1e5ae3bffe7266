package config

import (
	"errors"
	"fmt"

	"github.com/pivotal-cf/cred-audit/db"
)

type DatabaseConfig struct {
	Driver     string `long:"db-driver" description:"database driver" choice:"mysql" choice:"sqlite3" default:"sqlite3" yaml:"driver"`
	SQLitePath string `long:"sqlite-path" description:"SQLite database file" value-name:"PATH" default:"cred-audit.db" yaml:"sqlite_path"`

	MySQL struct {
		Username string `long:"mysql-username" description:"MySQL username" value-name:"USERNAME" yaml:"username"`
		Password string `long:"mysql-password" description:"MySQL password" env:"MYSQL_PASSWORD" value-name:"PASSWORD" yaml:"password"`
		Hostname string `long:"mysql-hostname" description:"MySQL hostname" value-name:"HOSTNAME" yaml:"hostname"`
		Port     uint16 `long:"mysql-port" description:"MySQL port" value-name:"PORT" default:"3306" yaml:"port"`
		DBName   string `long:"mysql-dbname" description:"MySQL database name" value-name:"DBNAME" yaml:"db_name"`
	} `group:"MySQL Options" yaml:"mysql"`
}

func (c *DatabaseConfig) Validate() []error {
	var errs []error

	switch c.Driver {
	case db.DriverMySQL:
		if c.MySQL.Username == "" {
			errs = append(errs, errors.New("no mysql username specified"))
		}

		if c.MySQL.Hostname == "" {
			errs = append(errs, errors.New("no mysql hostname specified"))
		}

		if c.MySQL.DBName == "" {
			errs = append(errs, errors.New("no mysql db name specified"))
		}
	case db.DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("no sqlite path specified"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown database driver: %q", c.Driver))
	}

	return errs
}

// DSN returns the driver name and data source name to open.
func (c *DatabaseConfig) DSN() (string, string) {
	if c.Driver == db.DriverMySQL {
		return db.DriverMySQL, db.NewDSN(c.MySQL.Username, c.MySQL.Password, c.MySQL.DBName, c.MySQL.Hostname, int(c.MySQL.Port))
	}

	return db.DriverSQLite, db.NewSQLiteDSN(c.SQLitePath)
}
