package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/quarryhq/quarry/core"
)

var _ core.Formatter = (*Tab)(nil)

// Tab writes a header line and one line per row with fields separated by a
// single horizontal tab, LF terminated. Raw tab format has no quoting, so
// tabs, line breaks and backslashes inside a field are escaped with the fixed
// substitution from core.EscapeTabField. Header names get the same treatment.
type Tab struct{}

func NewTab() *Tab {
	return &Tab{}
}

func (tf *Tab) Name() string {
	return "tab"
}

func (tf *Tab) Format(header core.Header, rows []core.Row, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if len(header) > 0 {
		names := make([]string, len(header))
		for i, name := range header {
			names[i] = core.EscapeTabField(name)
		}
		if _, err := bw.WriteString(strings.Join(names, "\t") + "\n"); err != nil {
			return fmt.Errorf("w.WriteString header: %w", err)
		}
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return mismatchError(i, len(row), len(header))
		}
		if len(row) == 0 {
			continue
		}

		fields := make([]string, len(row))
		for j, val := range row {
			fields[j] = val.TabField()
		}

		if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return fmt.Errorf("w.WriteString row %d: %w", i, err)
		}
	}

	return bw.Flush()
}
