package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is a CSS length unit.
type Unit string

const (
	Pixel          Unit = "px"
	Em             Unit = "em"
	Rem            Unit = "rem"
	Percent        Unit = "%"
	ViewportHeight Unit = "vh"
	ViewportWidth  Unit = "vw"
	ViewportMin    Unit = "vmin"
	ViewportMax    Unit = "vmax"
	Point          Unit = "pt"
	Pica           Unit = "pc"
	Inch           Unit = "in"
	Centimeter     Unit = "cm"
	Millimeter     Unit = "mm"
)

// Absolute conversion factors at the CSS reference density of 96px per inch.
const (
	pointsPerPx     = 0.75
	pxPerPica       = 16.0
	pxPerInch       = 96.0
	pxPerCentimeter = 37.8
	pxPerMillimeter = 3.78
)

var allUnits = []Unit{
	Pixel, Em, Rem, Percent,
	ViewportHeight, ViewportWidth, ViewportMin, ViewportMax,
	Point, Pica, Inch, Centimeter, Millimeter,
}

var descriptions = map[Unit]string{
	Pixel:          "Pixels (absolute unit)",
	Em:             "Relative to parent element font size",
	Rem:            "Relative to root element font size",
	Percent:        "Percentage of parent element",
	ViewportHeight: "Percentage of viewport height",
	ViewportWidth:  "Percentage of viewport width",
	ViewportMin:    "Percentage of viewport's smaller dimension",
	ViewportMax:    "Percentage of viewport's larger dimension",
	Point:          "Points (1/72 of an inch)",
	Pica:           "Picas (1/6 of an inch)",
	Inch:           "Inches",
	Centimeter:     "Centimeters",
	Millimeter:     "Millimeters",
}

// Units returns every supported unit in display order.
func Units() []Unit {
	out := make([]Unit, len(allUnits))
	copy(out, allUnits)
	return out
}

// ParseUnit resolves a unit name. "percent" is accepted as an alias for "%".
func ParseUnit(name string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "percent" {
		return Percent, nil
	}
	for _, u := range allUnits {
		if string(u) == normalized {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown unit %q", name)
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	_, ok := descriptions[u]
	return ok
}

// Description returns a short human explanation of the unit.
func (u Unit) Description() string {
	return descriptions[u]
}

// Precision is the number of decimal places used when formatting a value in this unit.
func (u Unit) Precision() int {
	switch u {
	case Em, Rem, Pica, Inch, Centimeter:
		return 4
	default:
		return 2
	}
}

// Format renders value with the unit's fixed precision. Ties round away from zero.
func (u Unit) Format(value float64) string {
	prec := u.Precision()
	scale := math.Pow10(prec)
	scaled := value * scale
	if math.IsInf(scaled, 0) && !math.IsInf(value, 0) {
		// Magnitudes this large have no fractional digits left to round.
		return strconv.FormatFloat(value, 'f', prec, 64)
	}
	rounded := math.Round(scaled) / scale
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', prec, 64)
}
