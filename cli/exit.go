package cli

import (
	"database/sql/driver"
	"errors"
	"io/fs"
	"net"

	"github.com/go-sql-driver/mysql"

	"github.com/quarryhq/quarry/adapters"
	"github.com/quarryhq/quarry/core"
)

// Process exit codes. Scripts depend on these, so the mapping is a contract.
const (
	ExitSuccess    = 0
	ExitNoRows     = 1
	ExitConfig     = 2
	ExitConnection = 3
	ExitQuery      = 4
	ExitIO         = 5
)

var (
	// ErrNoRows marks an empty result set without --allow-empty.
	ErrNoRows = errors.New("query returned no rows")

	// ErrConfig marks invalid or missing configuration.
	ErrConfig = errors.New("invalid configuration")
)

// mysql server error numbers that indicate failed authentication or
// authorization rather than a bad query
func isAccessDenied(number uint16) bool {
	switch number {
	case 1044, 1045, 1095, 1698, 3118:
		return true
	default:
		return false
	}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNoRows):
		return ExitNoRows
	case errors.Is(err, ErrConfig),
		errors.Is(err, core.ErrUnsupportedFormat),
		errors.Is(err, adapters.ErrUnsupportedTypeAlias):
		return ExitConfig
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if isAccessDenied(mysqlErr.Number) {
			return ExitConnection
		}
		return ExitQuery
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, driver.ErrBadConn) {
		return ExitConnection
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIO
	}

	// serialization failures and anything unclassified count as query errors
	return ExitQuery
}
