package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type (
	// Adapter is an object which allows connecting to a database via url
	Adapter interface {
		Connect(url string) (Driver, error)
	}

	// Driver is an interface to a specific database driver
	Driver interface {
		Query(context.Context, string) (ResultStream, error)
		Close()
	}
)

type ConnectionID string

// Connection wraps a driver together with its parameters. The tool performs
// exactly one query and one serialization per invocation, so the connection is
// owned by a single caller for the duration of one run.
type Connection struct {
	params           *ConnectionParams
	unexpandedParams *ConnectionParams

	driver Driver
}

func NewConnection(params *ConnectionParams, adapter Adapter) (*Connection, error) {
	expanded := params.Expand()

	if expanded.ID == "" {
		expanded.ID = ConnectionID(uuid.New().String())
	}

	driver, err := adapter.Connect(expanded.URL)
	if err != nil {
		return nil, fmt.Errorf("adapter.Connect: %w", err)
	}

	c := &Connection{
		params:           expanded,
		unexpandedParams: params,

		driver: driver,
	}

	return c, nil
}

func (c *Connection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.params)
}

func (c *Connection) GetID() ConnectionID { return c.params.ID }

func (c *Connection) GetType() string { return c.params.Type }

func (c *Connection) GetURL() string { return c.params.URL }

// GetParams returns the original unexpanded params for this connection
func (c *Connection) GetParams() *ConnectionParams {
	return c.unexpandedParams
}

// Query executes a single query and drains the resulting stream. Failures are
// opaque and non-retriable at this layer.
func (c *Connection) Query(ctx context.Context, query string) (*Result, error) {
	stream, err := c.driver.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("driver.Query: %w", err)
	}

	result, err := Drain(stream)
	if err != nil {
		return nil, fmt.Errorf("core.Drain: %w", err)
	}

	return result, nil
}

func (c *Connection) Close() {
	c.driver.Close()
}
