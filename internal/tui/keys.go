package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextStrategy key.Binding
	PrevStrategy key.Binding
	Up           key.Binding
	Down         key.Binding
	Random       key.Binding
	Edit         key.Binding
	Rebase       key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextStrategy: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next strategy")),
		PrevStrategy: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev strategy")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "select")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "select")),
		Random:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random base")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit base")),
		Rebase:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use selected as base")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevStrategy, k.NextStrategy, k.Random, k.Edit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevStrategy, k.NextStrategy, k.Up, k.Down},
		{k.Random, k.Edit, k.Rebase, k.Quit},
	}
}
