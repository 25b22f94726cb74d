package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/quarryhq/quarry/core"
)

type config struct {
	prettyJSON bool
}

type Option func(*config)

// WithPrettyJSON turns on indented JSON output. Ignored by other formats.
func WithPrettyJSON() Option {
	return func(c *config) {
		c.prettyJSON = true
	}
}

// New returns the serializer for the given format selector.
func New(selector core.Format, opts ...Option) (core.Formatter, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch selector {
	case core.FormatCSV:
		return NewCSV(), nil
	case core.FormatJSON:
		if cfg.prettyJSON {
			return NewPrettyJSON(), nil
		}
		return NewJSON(), nil
	case core.FormatTab:
		return NewTab(), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, selector)
	}
}

// Serialize renders the whole result with the serializer for the selector and
// commits the document to the sink in a single write, so a serializer failure
// leaves the sink untouched. Returns the number of serialized rows.
func Serialize(result *core.Result, selector core.Format, sink io.Writer, opts ...Option) (int, error) {
	formatter, err := New(selector, opts...)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(result.Header(), result.Rows(), &buf); err != nil {
		return 0, fmt.Errorf("failed to format results as %s: %w", formatter.Name(), err)
	}

	if _, err := sink.Write(buf.Bytes()); err != nil {
		return 0, fmt.Errorf("sink write: %w", err)
	}

	return result.Len(), nil
}

// mismatchError reports a row whose width disagrees with the header. This is
// an internal consistency violation and fails before any malformed line is
// emitted.
func mismatchError(rowIndex, width, columns int) error {
	return fmt.Errorf("%w: row %d has %d values, header has %d columns",
		core.ErrColumnCountMismatch, rowIndex, width, columns)
}
