package terminal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestResponsiveTUIHelper(t *testing.T) {
	req := require.New(t)

	h := NewResponsiveTUIHelper()
	w, ht := h.GetSize()
	req.Equal(80, w)
	req.Equal(24, ht)

	h.HandleWindowSizeMsg(tea.WindowSizeMsg{Width: 120, Height: 40})
	req.Equal(120, h.GetWidth())
	req.Equal(40, h.GetHeight())
	req.Equal(112, h.GetContentWidth())

	// 112 - 4 borders = 108 / 3
	req.Equal(36, h.ColumnWidth(3, 8))
	req.Equal(8, h.ColumnWidth(40, 8))
	req.Equal(8, h.ColumnWidth(0, 8))

	req.Equal(10, h.CalculateMaxItemsForHeight(3, 10))
	h.SetSize(30, 5)
	req.Equal(40, h.GetContentWidth())
	req.Equal(1, h.CalculateMaxItemsForHeight(1, 10))
}

func TestTruncateContentToHeight(t *testing.T) {
	req := require.New(t)

	h := NewResponsiveTUIHelper()
	h.SetSize(80, 6)

	short := "a\nb\nc"
	req.Equal(short, h.TruncateContentToHeight(short))

	long := strings.Repeat("line\n", 20)
	out := h.TruncateContentToHeight(long)
	lines := strings.Split(out, "\n")
	req.Len(lines, 5)
	req.Contains(lines[4], "content truncated")
}
