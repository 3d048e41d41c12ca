package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	t "github.com/evertras/bubble-table/table"

	"github.com/redjax/csvdash/internal/utils/strutils"
)

const minColWidth = 8

// columnTitle decorates a header with its filter state: the active column
// gets an arrow and filtered columns show how many values are selected.
func (m UIModel) columnTitle(i int, col string) string {
	title := col
	if n := len(m.filters.Selected(col)); n > 0 {
		title = fmt.Sprintf("%s (%d)", title, n)
	}
	if m.mode != modeFilter || i != m.activeCol {
		return title
	}
	if m.dropdownOpen {
		return title + " ▲"
	}
	return title + " ▼"
}

// buildTable renders the current page of results.
func (m UIModel) buildTable() t.Model {
	columns := m.table.Columns
	if len(columns) == 0 {
		return t.New(nil)
	}

	width := m.tuiHelper.ColumnWidth(len(columns), minColWidth)

	cols := make([]t.Column, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, t.NewColumn(c, strutils.Truncate(m.columnTitle(i, c), width), width))
	}

	page := m.pageRows()
	rows := make([]t.Row, 0, len(page))
	for _, r := range page {
		data := t.RowData{}
		for _, c := range columns {
			data[c] = strutils.Truncate(r[c], width)
		}
		rows = append(rows, t.NewRow(data))
	}

	return t.New(cols).
		WithRows(rows).
		BorderRounded().
		WithBaseStyle(lipgloss.NewStyle().Align(lipgloss.Left)).
		Focused(false)
}
