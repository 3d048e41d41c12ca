package querycommand

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	"github.com/redjax/csvdash/internal/utils/strutils"
)

const maxCellWidth = 40

// renderRows writes rows as a rounded go-pretty table.
func renderRows(w io.Writer, columns []string, rows []loaderservice.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, r := range rows {
		line := make(table.Row, len(columns))
		for i, c := range columns {
			line[i] = strutils.Truncate(r[c], maxCellWidth)
		}
		t.AppendRow(line)
	}
	t.Render()
}

// renderColumns lists each column with its distinct values.
func renderColumns(w io.Writer, uv loaderservice.UniqueValues, maxValues int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Column", "Distinct", "Values"})

	for _, col := range uv.Columns {
		vals := uv.Get(col)
		shown := vals
		more := ""
		if maxValues > 0 && len(vals) > maxValues {
			shown = vals[:maxValues]
			more = ", …"
		}
		joined := strutils.Truncate(strings.Join(shown, ", ")+more, 3*maxCellWidth)
		t.AppendRow(table.Row{col, len(vals), joined})
	}
	t.Render()
}
