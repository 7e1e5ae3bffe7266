package db

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"

	memoryPrefix = "memory:"
)

func NewDSN(username, password, dbName, hostname string, port int) string {
	config := &mysql.Config{
		User:                 username,
		Passwd:               password,
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%d", hostname, port),
		DBName:               dbName,
		MultiStatements:      true,
		AllowNativePasswords: true,
		ParseTime:            true,
		Params: map[string]string{
			"charset": "utf8mb4",
		},
	}

	return config.FormatDSN()
}

// NewSQLiteDSN points at a database file with foreign keys enforced. A name
// prefixed with "memory:" opens a shared in-memory database instead.
func NewSQLiteDSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "1")
	params.Set("_busy_timeout", "5000")

	if strings.HasPrefix(path, memoryPrefix) {
		params.Set("mode", "memory")
		params.Set("cache", "shared")
		return fmt.Sprintf("file:%s?%s", strings.TrimPrefix(path, memoryPrefix), params.Encode())
	}

	return fmt.Sprintf("file:%s?%s", path, params.Encode())
}
