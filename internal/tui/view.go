package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/devtools/internal/colormath"
	"github.com/alexisbeaulieu97/devtools/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("devtools • palette explorer • %s", m.base)))
	sections = append(sections, strategyLine(m.strategy))

	sections = append(sections, sectionStyle.Render("Palette"), m.renderEntries())

	if selected := m.Selected(); selected != "" {
		sections = append(sections, sectionStyle.Render("Selected"), renderDetails(selected))
	}

	if m.editing {
		sections = append(sections, "", m.input.View())
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func strategyLine(current colormath.Strategy) string {
	names := make([]string, 0, len(colormath.Strategies()))
	for _, s := range colormath.Strategies() {
		if s == current {
			names = append(names, strategyStyle.Render(s.Title()))
			continue
		}
		names = append(names, mutedStyle.Render(s.Title()))
	}
	return "◀ " + strings.Join(names, "  ") + " ▶"
}

func (m Model) renderEntries() string {
	lines := make([]string, 0, len(m.palette))
	for i, hex := range m.palette {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("› ")
		}
		lines = append(lines, pointer+Swatch(hex, m.useColor)+"  "+colormath.HexToRGBString(hex))
	}
	return strings.Join(lines, "\n")
}

func renderDetails(hex string) string {
	c, ok := colormath.HexToHSL(hex)
	if !ok {
		return ""
	}
	return strings.Join([]string{
		components.NewMeter("H", 360, "°", "").View(c.H),
		components.NewMeter("S", 100, "%", hex).View(c.S),
		components.NewMeter("L", 100, "%", hex).View(c.L),
	}, "\n")
}
