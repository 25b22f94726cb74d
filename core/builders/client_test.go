package builders_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/core"
	"github.com/quarryhq/quarry/core/builders"
)

func TestClient_Query(t *testing.T) {
	r := require.New(t)

	db, smock, err := sqlmock.New()
	r.NoError(err)
	defer db.Close()

	smock.ExpectQuery("SELECT (.+) FROM people").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "note"}).
			AddRow(int64(1), "O'Brien", nil).
			AddRow(int64(2), "Smith", "on leave"),
	)

	client := builders.NewClient(db)
	defer client.Close()

	con, err := client.Conn(context.Background())
	r.NoError(err)

	stream, err := con.Query(context.Background(), "SELECT id, name, note FROM people")
	r.NoError(err)

	r.Equal(core.Header{"id", "name", "note"}, stream.Header())

	result, err := core.Drain(stream)
	r.NoError(err)

	r.Equal([]core.Row{
		{core.IntValue(1), core.TextValue("O'Brien"), core.NullValue()},
		{core.IntValue(2), core.TextValue("Smith"), core.TextValue("on leave")},
	}, result.Rows())

	r.NoError(smock.ExpectationsWereMet())
}

func TestClient_QueryTypeProcessor(t *testing.T) {
	r := require.New(t)

	db, smock, err := sqlmock.New()
	r.NoError(err)
	defer db.Close()

	cols := []*sqlmock.Column{
		sqlmock.NewColumn("price").OfType("DECIMAL", []byte("0.00")).Nullable(true),
	}
	smock.ExpectQuery("SELECT (.+) FROM prices").WillReturnRows(
		sqlmock.NewRowsWithColumnDefinition(cols...).
			AddRow([]byte("1.20")),
	)

	client := builders.NewClient(db,
		builders.WithTypeProcessor("decimal", func(val any) core.Value {
			if b, ok := val.([]byte); ok {
				return core.ParseDecimalValue(string(b))
			}
			return builders.DefaultTypeProcessor(val)
		}),
	)
	defer client.Close()

	con, err := client.Conn(context.Background())
	r.NoError(err)

	stream, err := con.Query(context.Background(), "SELECT price FROM prices")
	r.NoError(err)

	result, err := core.Drain(stream)
	r.NoError(err)

	r.Equal(1, result.Len())
	val := result.Rows()[0][0]
	r.Equal(core.KindDecimal, val.Kind())
	r.Equal("1.20", val.CSVField())

	r.NoError(smock.ExpectationsWereMet())
}

func TestClient_Exec(t *testing.T) {
	r := require.New(t)

	db, smock, err := sqlmock.New()
	r.NoError(err)
	defer db.Close()

	smock.ExpectExec("DELETE FROM people").WillReturnResult(sqlmock.NewResult(0, 3))

	client := builders.NewClient(db)
	defer client.Close()

	con, err := client.Conn(context.Background())
	r.NoError(err)

	stream, err := con.Exec(context.Background(), "DELETE FROM people")
	r.NoError(err)

	r.Equal(core.Header{"Rows Affected"}, stream.Header())

	result, err := core.Drain(stream)
	r.NoError(err)

	r.Equal([]core.Row{{core.IntValue(3)}}, result.Rows())

	r.NoError(smock.ExpectationsWereMet())
}

func TestDefaultTypeProcessor(t *testing.T) {
	r := require.New(t)

	testCases := []struct {
		name     string
		input    any
		expected core.ValueKind
	}{
		{"nil", nil, core.KindNull},
		{"int64", int64(1), core.KindInt},
		{"uint64", uint64(1), core.KindUint},
		{"float64", 1.5, core.KindFloat},
		{"bool", true, core.KindBool},
		{"bytes become text", []byte("x"), core.KindText},
		{"string", "x", core.KindText},
	}

	for _, tc := range testCases {
		r.Equal(tc.expected, builders.DefaultTypeProcessor(tc.input).Kind(), tc.name)
	}
}
