package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quarryhq/quarry/core"
)

var _ core.Formatter = (*JSON)(nil)

// JSON writes a single document: an array of row objects mapping column name
// to the column's JSON value. Duplicate column names resolve last-write-wins.
// A result with zero rows emits an empty array regardless of column count.
type JSON struct {
	pretty bool
}

func NewJSON() *JSON {
	return &JSON{}
}

func NewPrettyJSON() *JSON {
	return &JSON{pretty: true}
}

func (jf *JSON) Name() string {
	return "json"
}

func (jf *JSON) Format(header core.Header, rows []core.Row, w io.Writer) error {
	// never nil - zero rows must marshal to [], not null
	data := make([]map[string]any, 0, len(rows))

	for i, row := range rows {
		if len(row) != len(header) {
			return mismatchError(i, len(row), len(header))
		}

		record := make(map[string]any, len(row))
		for j, val := range row {
			jv, err := val.JSONValue()
			if err != nil {
				return fmt.Errorf("row %d, column %q: %w", i, header[j], err)
			}
			record[header[j]] = jv
		}

		data = append(data, record)
	}

	var out []byte
	var err error
	if jf.pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	return nil
}
