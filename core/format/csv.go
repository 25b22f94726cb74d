package format

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/quarryhq/quarry/core"
)

var _ core.Formatter = (*CSV)(nil)

// CSV writes a header line followed by one line per row. Fields containing
// the delimiter, a quote or a line break are quoted and embedded quotes
// doubled. Lines end with LF.
type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Name() string {
	return "csv"
}

func (cf *CSV) Format(header core.Header, rows []core.Row, w io.Writer) error {
	cw := csv.NewWriter(w)

	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("w.Write header: %w", err)
		}
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return mismatchError(i, len(row), len(header))
		}
		if len(row) == 0 {
			continue
		}

		record := make([]string, len(row))
		for j, val := range row {
			record[j] = val.CSVField()
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("w.Write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
