package format

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/quarryhq/quarry/core"
)

var _ core.Formatter = (*Table)(nil)

// Table renders rows as a human readable text table. It is a preview format
// for logs only and is deliberately not reachable through Serialize.
type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Name() string {
	return "table"
}

func (tf *Table) Format(header core.Header, rows []core.Row, w io.Writer) error {
	var tableHeader table.Row
	for _, name := range header {
		tableHeader = append(tableHeader, name)
	}

	var tableRows []table.Row
	for i, row := range rows {
		if len(row) != len(header) {
			return mismatchError(i, len(row), len(header))
		}

		tableRow := make(table.Row, len(row))
		for j, val := range row {
			tableRow[j] = val.CSVField()
		}
		tableRows = append(tableRows, tableRow)
	}

	t := table.NewWriter()
	t.AppendHeader(tableHeader)
	t.AppendRows(tableRows)
	t.AppendSeparator()
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	render := t.Render()

	_, err := w.Write([]byte(render))
	if err != nil {
		return err
	}
	return nil
}
