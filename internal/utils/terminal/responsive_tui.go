package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResponsiveTUIHelper tracks the terminal size for bubbletea models that lay
// themselves out relative to it.
type ResponsiveTUIHelper struct {
	width  int
	height int
}

// NewResponsiveTUIHelper creates a new responsive TUI helper with default dimensions
func NewResponsiveTUIHelper() *ResponsiveTUIHelper {
	return &ResponsiveTUIHelper{
		width:  80, // Default width
		height: 24, // Default height
	}
}

// SetSize updates the terminal dimensions
func (h *ResponsiveTUIHelper) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// GetSize returns the current terminal dimensions
func (h *ResponsiveTUIHelper) GetSize() (int, int) {
	return h.width, h.height
}

// GetWidth returns the current terminal width
func (h *ResponsiveTUIHelper) GetWidth() int {
	return h.width
}

// GetHeight returns the current terminal height
func (h *ResponsiveTUIHelper) GetHeight() int {
	return h.height
}

// HandleWindowSizeMsg is a helper function to handle tea.WindowSizeMsg
func (h *ResponsiveTUIHelper) HandleWindowSizeMsg(msg tea.WindowSizeMsg) {
	h.SetSize(msg.Width, msg.Height)
}

// GetContentWidth returns the available width for content (accounting for borders)
func (h *ResponsiveTUIHelper) GetContentWidth() int {
	contentWidth := h.width - 8 // Account for section borders and padding
	if contentWidth < 40 {
		contentWidth = 40
	}
	return contentWidth
}

// ColumnWidth splits the content width evenly over n table columns, never
// going below minWidth.
func (h *ResponsiveTUIHelper) ColumnWidth(n, minWidth int) int {
	if n <= 0 {
		return minWidth
	}
	// one border cell per column plus the closing border
	w := (h.GetContentWidth() - n - 1) / n
	if w < minWidth {
		return minWidth
	}
	return w
}

// CalculateMaxItemsForHeight calculates how many items can fit in the available height
func (h *ResponsiveTUIHelper) CalculateMaxItemsForHeight(linesPerItem int, reservedLines int) int {
	availableLines := h.height - reservedLines
	if availableLines <= 0 {
		return 1
	}

	maxItems := availableLines / linesPerItem
	if maxItems < 1 {
		maxItems = 1
	}
	return maxItems
}

// TruncateContentToHeight ensures content fits within terminal height
func (h *ResponsiveTUIHelper) TruncateContentToHeight(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= h.height-1 || h.height < 3 {
		return content
	}

	// Truncate if too many lines
	lines = lines[:h.height-2]
	lines = append(lines, lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")).
		Render("... (content truncated)"))
	return strings.Join(lines, "\n")
}
