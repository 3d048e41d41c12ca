package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/redjax/csvdash/internal/utils/strutils"
)

func (m UIModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("CSV Dashboard"),
		m.viewTabs(),
		m.viewQuery(),
	}
	if m.mode == modeFilter {
		if badges := m.viewBadges(); badges != "" {
			sections = append(sections, badges)
		}
		if m.dropdownOpen {
			sections = append(sections, m.viewDropdown())
		}
	}
	if line := m.viewMessages(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.viewResults(), m.help.View(m.keys))

	return m.tuiHelper.TruncateContentToHeight(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m UIModel) viewTabs() string {
	if len(m.tables) == 0 {
		return errorStyle.Render("No tables configured.")
	}
	tabs := make([]string, 0, len(m.tables))
	for i, name := range m.tables {
		label := strutils.ToTitleCase(name)
		if i == m.tableIndex {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m UIModel) viewQuery() string {
	var b strings.Builder
	b.WriteString(modeStyle.Render(m.mode.String()))

	if m.mode == modeSample {
		if len(m.samples) > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  sample %d of %d", m.sampleIndex+1, len(m.samples))))
		} else {
			b.WriteString(mutedStyle.Render("  no samples for this table"))
		}
		b.WriteString("\n")
		b.WriteString(m.sampleInput.View())
	} else {
		b.WriteString("\n")
		b.WriteString(m.queryText())
	}

	width := m.tuiHelper.GetContentWidth()
	return queryStyle.Width(width).Render(b.String())
}

func (m UIModel) viewBadges() string {
	badges := m.badges()
	if len(badges) == 0 {
		return ""
	}
	parts := make([]string, 0, len(badges))
	for i, b := range badges {
		label := b.String() + " ×"
		if i == m.badgeCursor {
			parts = append(parts, activeBadgeStyle.Render(label))
		} else {
			parts = append(parts, badgeStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// viewDropdown lists the active column's distinct values with checkboxes.
func (m UIModel) viewDropdown() string {
	col, ok := m.activeColumn()
	if !ok {
		return ""
	}
	values := m.unique.Get(col)

	// leave room for the header, query box and a page of rows
	maxItems := m.tuiHelper.CalculateMaxItemsForHeight(1, 20)
	start := 0
	if m.dropdownCursor >= maxItems {
		start = m.dropdownCursor - maxItems + 1
	}
	end := start + maxItems
	if end > len(values) {
		end = len(values)
	}

	var b strings.Builder
	b.WriteString(cursorStyle.Render(col))
	for i := start; i < end; i++ {
		b.WriteString("\n")
		check := "[ ]"
		if m.filters.Has(col, values[i]) {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, values[i])
		if i == m.dropdownCursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
	}
	if len(values) == 0 {
		b.WriteString("\n" + mutedStyle.Render("no values"))
	}
	return dropdownStyle.Render(b.String())
}

func (m UIModel) viewMessages() string {
	var lines []string
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	if m.statusMsg != "" {
		lines = append(lines, statusStyle.Render(m.statusMsg))
	}
	return strings.Join(lines, "\n")
}

func (m UIModel) viewResults() string {
	switch {
	case m.loadingCSV:
		return fmt.Sprintf("%s Loading %s...", m.spinner.View(), m.tableName)
	case m.loadingQuery:
		return fmt.Sprintf("%s Running query...", m.spinner.View())
	case len(m.resultData) == 0:
		return mutedStyle.Render("No data available.")
	}

	prev, next := "  ", "  "
	if m.pager.HasPrev() {
		prev = "‹ "
	}
	if m.pager.HasNext(len(m.resultData)) {
		next = " ›"
	}
	footer := fmt.Sprintf("%sPage %d of %d%s  |  %d rows  |  %d per page",
		prev, m.pager.Page, m.totalPages(), next, len(m.resultData), m.pager.Size)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.buildTable().View(),
		mutedStyle.Render(footer),
	)
}
