package colormath

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PaletteSize is the number of colours every strategy produces.
const PaletteSize = 5

// Strategy selects the rule used to derive a palette from a base colour.
type Strategy int

const (
	Analogous Strategy = iota
	Monochromatic
	Complementary
	Triadic
	Tetradic
)

var strategyNames = map[Strategy]string{
	Analogous:     "analogous",
	Monochromatic: "monochromatic",
	Complementary: "complementary",
	Triadic:       "triadic",
	Tetradic:      "tetradic",
}

// Strategies lists every palette strategy in display order.
func Strategies() []Strategy {
	return []Strategy{Analogous, Monochromatic, Complementary, Triadic, Tetradic}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Title returns the capitalised strategy name.
func (s Strategy) Title() string {
	name := s.String()
	if _, ok := strategyNames[s]; !ok {
		return name
	}
	return cases.Title(language.English).String(name)
}

// Next returns the following strategy, wrapping after Tetradic.
func (s Strategy) Next() Strategy {
	return Strategy((int(s) + 1) % len(strategyNames))
}

// Prev returns the preceding strategy, wrapping before Analogous.
func (s Strategy) Prev() Strategy {
	n := len(strategyNames)
	return Strategy((int(s) - 1 + n) % n)
}

// ParseStrategy resolves a case-insensitive strategy name.
func ParseStrategy(name string) (Strategy, bool) {
	wanted := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == wanted {
			return s, true
		}
	}
	return 0, false
}

// GeneratePalette derives five colours from baseHex. Entries that correspond to the base
// colour itself are returned as the base in lowercase form. Hue offsets wrap modulo 360
// and lightness offsets clamp to [0,100]. The boolean is false for a malformed base or an
// unknown strategy.
func GeneratePalette(baseHex string, strategy Strategy) ([]string, bool) {
	rgb, ok := ParseHex(baseHex)
	if !ok {
		return nil, false
	}

	base := rgb.Hex()
	c := RGBToHSL(rgb)

	switch strategy {
	case Analogous:
		return []string{
			shift(c, -60, 0),
			shift(c, -30, 0),
			base,
			shift(c, 30, 0),
			shift(c, 60, 0),
		}, true
	case Monochromatic:
		return []string{
			shift(c, 0, -40),
			shift(c, 0, -20),
			base,
			shift(c, 0, 20),
			shift(c, 0, 40),
		}, true
	case Complementary:
		return []string{
			shift(c, 0, -20),
			base,
			shift(c, 0, 20),
			shift(c, 180, -20),
			shift(c, 180, 0),
		}, true
	case Triadic:
		return []string{
			base,
			shift(c, 120, 0),
			shift(c, 240, 0),
			shift(c, 120, -20),
			shift(c, 240, -20),
		}, true
	case Tetradic:
		return []string{
			base,
			shift(c, 90, 0),
			shift(c, 180, 0),
			shift(c, 270, 0),
			shift(c, 180, -20),
		}, true
	default:
		return nil, false
	}
}

// RotateHue adds degrees to the hue, wrapping into [0,360).
func RotateHue(h, degrees float64) float64 {
	rotated := math.Mod(h+degrees, 360)
	if rotated < 0 {
		rotated += 360
	}
	return rotated
}

// ClampLightness bounds a lightness percentage to [0,100].
func ClampLightness(l float64) float64 {
	return math.Max(0, math.Min(100, l))
}

func shift(c HSL, hueOffset, lightnessOffset float64) string {
	return HSLToHex(HSL{
		H: RotateHue(c.H, hueOffset),
		S: c.S,
		L: ClampLightness(c.L + lightnessOffset),
	})
}
