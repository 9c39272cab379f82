package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/devtools/internal/colormath"
	"github.com/alexisbeaulieu97/devtools/internal/units"
)

const swatchWidth = 11

// labelColor picks black or white text for legibility on top of hex.
func labelColor(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color("#ffffff")
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Swatch renders a single colour block labelled with its hex code. Without colour support
// it falls back to a plain bracketed label.
func Swatch(hex string, useColor bool) string {
	if !useColor {
		return fmt.Sprintf("[%s]", hex)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(labelColor(hex)).
		Width(swatchWidth).
		Align(lipgloss.Center).
		Render(hex)
}

// RenderPalette renders a titled row of swatches followed by one detail line per colour.
func RenderPalette(strategy colormath.Strategy, palette []string, useColor bool) string {
	blocks := make([]string, 0, len(palette))
	details := make([]string, 0, len(palette))
	for i, hex := range palette {
		blocks = append(blocks, Swatch(hex, useColor))
		details = append(details, fmt.Sprintf("%d  %s  %s  %s", i+1, hex, colormath.HexToRGBString(hex), describeHSL(hex)))
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("%s palette", strategy.Title())),
		lipgloss.JoinHorizontal(lipgloss.Top, interleave(blocks, " ")...),
		strings.Join(details, "\n"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderConversions renders a two-column unit table with descriptions.
func RenderConversions(results []units.Result, from units.Unit) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		marker := " "
		if r.Unit == from {
			marker = cursorStyle.Render("›")
		}
		lines = append(lines, fmt.Sprintf("%s %s%s  %s",
			marker,
			unitStyle.Render(string(r.Unit)),
			valueStyle.Render(r.Formatted),
			mutedStyle.Render(r.Unit.Description()),
		))
	}
	return strings.Join(lines, "\n")
}

func describeHSL(hex string) string {
	c, ok := colormath.HexToHSL(hex)
	if !ok {
		return ""
	}
	return c.String()
}

func interleave(items []string, sep string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
