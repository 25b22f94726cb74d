package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quarryhq/quarry/core"
	"github.com/quarryhq/quarry/core/builders"
)

var _ core.Driver = (*mySQLDriver)(nil)

type mySQLDriver struct {
	c *builders.Client
}

func newMySQLDriver(url string) (*mySQLDriver, error) {
	db, err := sql.Open("mysql", withConnParams(url))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mysql database: %w", err)
	}

	return &mySQLDriver{
		c: builders.NewClient(db, mysqlTypeProcessors()...),
	}, nil
}

// mysqlTypeProcessors maps mysql column types that the generic scan cannot
// classify on Go type alone: decimals arrive as bytes and must stay exact,
// blob family columns are genuinely binary, and date columns need the
// canonical temporal form.
func mysqlTypeProcessors() []builders.ClientOption {
	opts := []builders.ClientOption{
		builders.WithTypeProcessor("decimal", processDecimal),
		builders.WithTypeProcessor("newdecimal", processDecimal),
	}

	for _, typ := range []string{"binary", "varbinary", "blob", "tinyblob", "mediumblob", "longblob", "bit", "geometry"} {
		opts = append(opts, builders.WithTypeProcessor(typ, processBinary))
	}

	for _, typ := range []string{"date", "datetime", "timestamp"} {
		opts = append(opts, builders.WithTypeProcessor(typ, processTemporal))
	}

	return opts
}

func processDecimal(val any) core.Value {
	switch tv := val.(type) {
	case nil:
		return core.NullValue()
	case []byte:
		return core.ParseDecimalValue(string(tv))
	case string:
		return core.ParseDecimalValue(tv)
	default:
		return builders.DefaultTypeProcessor(val)
	}
}

func processBinary(val any) core.Value {
	switch tv := val.(type) {
	case nil:
		return core.NullValue()
	case []byte:
		return core.BytesValue(tv)
	default:
		return builders.DefaultTypeProcessor(val)
	}
}

func processTemporal(val any) core.Value {
	switch tv := val.(type) {
	case nil:
		return core.NullValue()
	case time.Time:
		return core.TimeValue(core.CanonicalTime(tv))
	case []byte:
		// zero dates and the like come through as raw text even with parseTime
		return core.TimeValue(string(tv))
	default:
		return builders.DefaultTypeProcessor(val)
	}
}

func (c *mySQLDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	con, err := c.c.Conn(ctx)
	if err != nil {
		return nil, err
	}
	cb := func() {
		con.Close()
	}
	defer func() {
		if err != nil {
			cb()
		}
	}()

	rows, err := con.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(rows.Header()) > 0 {
		rows.SetCallback(cb)
		return rows, nil
	}
	rows.Close()

	// empty header means no result -> get affected rows
	rows, err = con.Query(ctx, "select ROW_COUNT() as 'Rows Affected'")
	if err != nil {
		return nil, err
	}
	rows.SetCallback(cb)
	return rows, nil
}

func (c *mySQLDriver) Close() {
	c.c.Close()
}
