package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard on the alternate screen and blocks until it exits.
func Run(opts Options) error {
	if opts.Loader == nil {
		return fmt.Errorf("dashboard needs a table loader")
	}
	p := tea.NewProgram(NewUIModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited with error: %w", err)
	}
	return nil
}
