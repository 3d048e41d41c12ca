package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	exportservice "github.com/redjax/csvdash/internal/services/exportService"
	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
)

// loadTableCmd loads the named table off the update loop
func (m UIModel) loadTableCmd(seq int, table string) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		res := loader.Load(context.Background(), table)
		return tableLoadedMsg{seq: seq, table: table, result: res}
	}
}

// runQueryCmd waits out the run delay before results are applied
func runQueryCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return queryTickMsg{seq: seq}
	})
}

// exportCmd writes the current result set to a PDF
func exportCmd(dir, table string, columns []string, rows []loaderservice.Row) tea.Cmd {
	return func() tea.Msg {
		path, err := exportservice.WritePDFFile(dir, table, columns, rows)
		return exportDoneMsg{path: path, err: err}
	}
}
