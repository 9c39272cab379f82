package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devtools/internal/colormath"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextStrategy):
		m.setStrategy(m.strategy.Next())
	case key.Matches(msg, m.keys.PrevStrategy):
		m.setStrategy(m.strategy.Prev())
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.palette)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Random):
		m.errMsg = ""
		m.setBase(colormath.RandomHex(m.rng))
	case key.Matches(msg, m.keys.Rebase):
		if selected := m.Selected(); selected != "" {
			m.setBase(selected)
		}
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.errMsg = ""
		m.input.SetValue(m.base)
		m.input.CursorEnd()
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		base, ok := colormath.NormalizeHex(value)
		if !ok {
			m.errMsg = "not a hex colour: " + value
			return m, nil
		}
		m.editing = false
		m.errMsg = ""
		m.input.Blur()
		m.setBase(base)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
