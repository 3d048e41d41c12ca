package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m UIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.tuiHelper.HandleWindowSizeMsg(msg)
		m.help.Width = msg.Width
		m.sampleInput.Width = m.tuiHelper.GetContentWidth() - 4
		return m, nil

	case tableLoadedMsg:
		return m.applyLoad(msg), nil

	case queryTickMsg:
		return m.finishRun(msg), nil

	case exportDoneMsg:
		return m.finishExport(msg), nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editingSample {
			return m.updateSampleInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateSampleInput routes keys to the query editor until it is closed.
func (m UIModel) updateSampleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.editingSample = false
		m.sampleInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editingSample = false
		m.sampleInput.Blur()
		next, cmd := m.startRun()
		return next, cmd
	}

	var cmd tea.Cmd
	m.sampleInput, cmd = m.sampleInput.Update(msg)
	return m, cmd
}

func (m UIModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	// the open dropdown owns navigation keys
	if m.dropdownOpen {
		switch {
		case key.Matches(msg, k.Up):
			return m.moveDropdown(-1), nil
		case key.Matches(msg, k.Down):
			return m.moveDropdown(1), nil
		case key.Matches(msg, k.ToggleValue):
			return m.toggleDropdownValue(), nil
		case key.Matches(msg, k.Close), key.Matches(msg, k.Dropdown):
			m.dropdownOpen = false
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, k.NextTable):
		next, cmd := m.selectTable(m.tableIndex + 1)
		return next, cmd

	case key.Matches(msg, k.PrevTable):
		next, cmd := m.selectTable(m.tableIndex - 1)
		return next, cmd

	case key.Matches(msg, k.ToggleMode):
		return m.toggleMode(), nil

	case key.Matches(msg, k.Run):
		next, cmd := m.startRun()
		return next, cmd

	case key.Matches(msg, k.Reset):
		return m.reset(), nil

	case key.Matches(msg, k.NextPage):
		return m.nextPage(), nil

	case key.Matches(msg, k.PrevPage):
		return m.prevPage(), nil

	case key.Matches(msg, k.PageSize):
		return m.cyclePageSize(), nil

	case key.Matches(msg, k.Export):
		next, cmd := m.startExport()
		return next, cmd

	case key.Matches(msg, k.Close):
		m.errMsg = ""
		return m, nil
	}

	if m.mode == modeSample {
		switch {
		case key.Matches(msg, k.EditSample):
			if m.busy() {
				return m, nil
			}
			m.editingSample = true
			cmd := m.sampleInput.Focus()
			return m, cmd
		case key.Matches(msg, k.PrevSample):
			return m.chooseSample(-1), nil
		case key.Matches(msg, k.NextSample):
			return m.chooseSample(1), nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, k.PrevColumn):
		return m.moveColumn(-1), nil
	case key.Matches(msg, k.NextColumn):
		return m.moveColumn(1), nil
	case key.Matches(msg, k.Dropdown):
		return m.toggleDropdown(), nil
	case key.Matches(msg, k.NextBadge):
		return m.nextBadge(), nil
	case key.Matches(msg, k.RemoveBadge):
		return m.removeBadge(), nil
	}

	return m, nil
}
