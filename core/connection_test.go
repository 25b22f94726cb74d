package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/core"
	"github.com/quarryhq/quarry/core/mock"
)

func TestConnection_Query(t *testing.T) {
	r := require.New(t)

	rows := mock.NewRows(0, 10)

	connection, err := core.NewConnection(&core.ConnectionParams{}, mock.NewAdapter(rows))
	r.NoError(err)
	defer connection.Close()

	// an id gets assigned when params don't provide one
	r.NotEmpty(connection.GetID())

	result, err := connection.Query(context.Background(), "select * from anything")
	r.NoError(err)

	r.Equal(10, result.Len())
	r.Equal(rows, result.Rows())
}

func TestConnection_QueryError(t *testing.T) {
	r := require.New(t)

	expectedErr := errors.New("query failed")

	adapter := mock.NewAdapter(mock.NewRows(0, 10),
		mock.AdapterWithQuerySideEffect("fail", func(ctx context.Context) error {
			return expectedErr
		}),
	)

	connection, err := core.NewConnection(&core.ConnectionParams{}, adapter)
	r.NoError(err)
	defer connection.Close()

	_, err = connection.Query(context.Background(), "fail")
	r.ErrorIs(err, expectedErr)
}
