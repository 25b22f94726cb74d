package adapters

import (
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql"

	"github.com/quarryhq/quarry/core"
)

// Register adapter
func init() {
	_ = register(&MySQL{}, "mysql", "mariadb")
}

var _ core.Adapter = (*MySQL)(nil)

type MySQL struct{}

func (m *MySQL) Connect(url string) (core.Driver, error) {
	return newMySQLDriver(url)
}

var mysqlParamsRegex = regexp.MustCompile(`[\?][\w]+=[\w-]+`)

// withConnParams appends driver parameters to a DSN, respecting any
// parameters already present. parseTime makes the driver hand out time.Time
// for date and timestamp columns instead of raw bytes.
func withConnParams(url string) string {
	sep := "?"
	if mysqlParamsRegex.MatchString(url) {
		sep = "&"
	}

	return fmt.Sprintf("%s%sparseTime=true", url, sep)
}
