package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const meterWidth = 24

// Meter renders a labelled horizontal bar for a value within [0, max].
type Meter struct {
	bar   progress.Model
	label string
	max   float64
	unit  string
}

// NewMeter creates a meter. An empty fill colour uses the default gradient.
func NewMeter(label string, max float64, unit, fill string) Meter {
	var bar progress.Model
	if fill != "" {
		bar = progress.New(progress.WithSolidFill(fill), progress.WithoutPercentage())
	} else {
		bar = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	}
	bar.Width = meterWidth
	return Meter{bar: bar, label: label, max: max, unit: unit}
}

// View renders the bar for value. The bar is capped at max but the printed value is not.
func (m Meter) View(value float64) string {
	ratio := 0.0
	if m.max > 0 {
		ratio = math.Max(0, math.Min(1.0, value/m.max))
	}
	label := lipgloss.NewStyle().Bold(true).Width(2).Render(m.label)
	reading := fmt.Sprintf("%.0f%s", value, m.unit)
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", m.bar.ViewAs(ratio), " ", reading)
}
