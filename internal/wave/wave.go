package wave

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/devtools/internal/validation"
)

// Width is the fixed horizontal extent of the generated viewBox.
const Width = 800

// Config describes the wave. Amplitude is in px, Frequency in hundredths of a half turn per
// segment, and Points is the number of crests, each drawn with two segments.
type Config struct {
	Height      float64 `yaml:"height" json:"height" validate:"gt=0,finite"`
	Amplitude   float64 `yaml:"amplitude" json:"amplitude" validate:"gte=0,finite"`
	Frequency   float64 `yaml:"frequency" json:"frequency" validate:"finite"`
	Points      int     `yaml:"points" json:"points" validate:"gte=1,lte=100"`
	Stroke      string  `yaml:"stroke" json:"stroke" validate:"hexcolor"`
	Fill        string  `yaml:"fill" json:"fill" validate:"eq=none|hexcolor"`
	StrokeWidth float64 `yaml:"stroke_width" json:"stroke_width" validate:"gt=0,finite"`
}

// DefaultConfig returns a 100px tall indigo outline with four crests.
func DefaultConfig() Config {
	return Config{
		Height:      100,
		Amplitude:   30,
		Frequency:   20,
		Points:      4,
		Stroke:      "#4f46e5",
		Fill:        "none",
		StrokeWidth: 2,
	}
}

// Validate reports the first setting that cannot produce a drawable wave.
func (c Config) Validate() error {
	if err := validation.Instance().Struct(c); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			return fmt.Errorf("wave: %s failed validation for tag '%s'", ves[0].Field(), ves[0].Tag())
		}
		return fmt.Errorf("wave: %w", err)
	}
	return nil
}

type point struct {
	x, y float64
}

// Path returns the SVG path data: a move to the first sample followed by one cubic curve per
// segment whose control points sit halfway between neighbouring samples. Coordinates are
// rounded to two decimals. The boolean is false for an invalid config.
func Path(c Config) (string, bool) {
	if c.Validate() != nil {
		return "", false
	}

	segments := c.Points * 2
	points := make([]point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		x := float64(i) * Width / float64(segments)
		y := c.Height/2 + math.Sin(float64(i)*math.Pi*c.Frequency/100)*c.Amplitude
		points = append(points, point{x: round2(x), y: round2(y)})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %s,%s", num(points[0].x), num(points[0].y))
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		mid := num((prev.x + cur.x) / 2)
		fmt.Fprintf(&b, " C %s,%s %s,%s %s,%s", mid, num(prev.y), mid, num(cur.y), num(cur.x), num(cur.y))
	}
	return b.String(), true
}

var svgTemplate = template.Must(template.New("wave.svg").Parse(`<svg width="100%" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" xmlns="http://www.w3.org/2000/svg">
  <path
    d="{{.Path}}"
    stroke="{{.Stroke}}"
    fill="{{.Fill}}"
    stroke-width="{{.StrokeWidth}}"
  />
</svg>`))

// SVG renders a standalone SVG document containing the wave path.
func SVG(c Config) (string, bool) {
	path, ok := Path(c)
	if !ok {
		return "", false
	}

	var out bytes.Buffer
	err := svgTemplate.Execute(&out, map[string]string{
		"Width":       num(Width),
		"Height":      num(c.Height),
		"Path":        path,
		"Stroke":      c.Stroke,
		"Fill":        c.Fill,
		"StrokeWidth": num(c.StrokeWidth),
	})
	if err != nil {
		return "", false
	}
	return out.String(), true
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
