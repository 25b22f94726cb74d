package builders

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/quarryhq/quarry/core"
)

// TypeProcessor converts a raw driver value into a core.Value.
type TypeProcessor func(any) core.Value

// Client is the default sql client used by specific adapter implementations.
type Client struct {
	db             *sql.DB
	typeProcessors map[string]TypeProcessor
}

func NewClient(db *sql.DB, opts ...ClientOption) *Client {
	config := clientConfig{
		typeProcessors: make(map[string]TypeProcessor),
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &Client{
		db:             db,
		typeProcessors: config.typeProcessors,
	}
}

func (c *Client) Conn(ctx context.Context) (*Conn, error) {
	conn, err := c.db.Conn(ctx)

	return &Conn{
		conn:           conn,
		typeProcessors: c.typeProcessors,
	}, err
}

func (c *Client) Close() {
	c.db.Close()
}

// Conn is a single connection to use for execution
type Conn struct {
	conn           *sql.Conn
	typeProcessors map[string]TypeProcessor
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

// Exec executes a statement and returns a stream with a single row holding
// the number of affected rows.
func (c *Conn) Exec(ctx context.Context, query string) (*ResultStream, error) {
	res, err := c.conn.ExecContext(ctx, query)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	rows := NewResultStreamBuilder().
		WithNextFunc(NextSingle(core.IntValue(affected))).
		WithHeader(core.Header{"Rows Affected"}).
		WithMeta(&core.Meta{Query: query, Timestamp: time.Now()}).
		Build()

	return rows, nil
}

func (c *Conn) getTypeProcessor(typ string) TypeProcessor {
	proc, ok := c.typeProcessors[strings.ToLower(typ)]
	if ok {
		return proc
	}

	return DefaultTypeProcessor
}

// DefaultTypeProcessor maps the standard scan types of database/sql drivers
// to value variants. Drivers hand out []byte for most textual columns, so
// bytes default to text; binary column types must opt in via a custom
// processor.
func DefaultTypeProcessor(val any) core.Value {
	switch tv := val.(type) {
	case nil:
		return core.NullValue()
	case int64:
		return core.IntValue(tv)
	case uint64:
		return core.UintValue(tv)
	case float64:
		return core.FloatValue(tv)
	case float32:
		return core.FloatValue(float64(tv))
	case bool:
		return core.BoolValue(tv)
	case time.Time:
		return core.TimeValue(core.CanonicalTime(tv))
	case []byte:
		return core.TextValue(string(tv))
	case string:
		return core.TextValue(tv)
	default:
		return core.TextValue(fmt.Sprint(tv))
	}
}

// Query executes a query on a connection and returns a result stream.
func (c *Conn) Query(ctx context.Context, query string) (*ResultStream, error) {
	dbRows, err := c.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	header, err := dbRows.Columns()
	if err != nil {
		return nil, err
	}

	hasNextFunc := func() bool {
		return dbRows.Next()
	}

	nextFunc := func() (core.Row, error) {
		dbCols, err := dbRows.ColumnTypes()
		if err != nil {
			return nil, err
		}

		columns := make([]any, len(dbCols))
		columnPointers := make([]any, len(dbCols))
		for i := range columns {
			columnPointers[i] = &columns[i]
		}

		if err := dbRows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		row := make(core.Row, len(dbCols))
		for i := range dbCols {
			val := *columnPointers[i].(*any)

			proc := c.getTypeProcessor(dbCols[i].DatabaseTypeName())

			row[i] = proc(val)
		}

		return row, nil
	}

	rows := NewResultStreamBuilder().
		WithNextFunc(nextFunc, hasNextFunc).
		WithHeader(header).
		WithMeta(&core.Meta{Query: query, Timestamp: time.Now()}).
		WithCloseFunc(func() {
			_ = dbRows.Close()
		}).
		Build()

	return rows, nil
}
