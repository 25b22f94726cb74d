package core

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type (
	// Row and Header are attributes of the ResultStream iterator
	Row    []Value
	Header []string

	// Meta holds metadata about an executed query
	Meta struct {
		// actual query which gave the result
		Query string
		// timestamp of the executed query
		Timestamp time.Time
	}

	// ResultStream is a result from an executed query in the form of an iterator.
	// The header is known before the first row is read and never changes mid-stream.
	ResultStream interface {
		Meta() *Meta
		Header() Header
		Next() (Row, error)
		HasNext() bool
		Close()
	}

	// Formatter writes a complete document of one output format to the writer
	Formatter interface {
		Name() string
		Format(header Header, rows []Row, w io.Writer) error
	}
)

// Format selects one of the supported output formats.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatJSON
	FormatTab
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatTab:
		return "tab"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat resolves a format selector string. An unrecognized selector is an
// error, never a silent default.
func ParseFormat(selector string) (Format, error) {
	switch strings.ToLower(selector) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "tab", "tsv":
		return FormatTab, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, selector)
	}
}
