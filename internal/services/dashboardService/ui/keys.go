package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTable   key.Binding
	PrevTable   key.Binding
	ToggleMode  key.Binding
	PrevColumn  key.Binding
	NextColumn  key.Binding
	Dropdown    key.Binding
	Up          key.Binding
	Down        key.Binding
	ToggleValue key.Binding
	Close       key.Binding
	NextBadge   key.Binding
	RemoveBadge key.Binding
	Run         key.Binding
	Reset       key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	PageSize    key.Binding
	Export      key.Binding
	EditSample  key.Binding
	PrevSample  key.Binding
	NextSample  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTable:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next table")),
		PrevTable:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev table")),
		ToggleMode:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "filter/sample mode")),
		PrevColumn:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		NextColumn:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Dropdown:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter column")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ToggleValue: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle value")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		NextBadge:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "next badge")),
		RemoveBadge: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove badge")),
		Run:         key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter/r", "run query")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		NextPage:    key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:    key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		PageSize:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "rows per page")),
		Export:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export PDF")),
		EditSample:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "edit query")),
		PrevSample:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev sample")),
		NextSample:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next sample")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTable, k.ToggleMode, k.Dropdown, k.Run, k.NextPage, k.PrevPage, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTable, k.PrevTable, k.ToggleMode, k.Help, k.Quit},
		{k.PrevColumn, k.NextColumn, k.Dropdown, k.Up, k.Down, k.ToggleValue, k.Close},
		{k.NextBadge, k.RemoveBadge, k.Run, k.Reset, k.Export},
		{k.NextPage, k.PrevPage, k.PageSize, k.EditSample, k.PrevSample, k.NextSample},
	}
}
