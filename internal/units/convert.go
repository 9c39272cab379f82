package units

import (
	"math"
	"strconv"
	"strings"
)

// Result is one converted magnitude.
type Result struct {
	Unit      Unit    `json:"unit"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// String renders the result with its unit suffix, e.g. "1.0000rem".
func (r Result) String() string {
	return r.Formatted + string(r.Unit)
}

// ToPixels normalises value expressed in unit to pixels. Unknown units yield NaN.
func ToPixels(value float64, unit Unit, frame ReferenceFrame) float64 {
	switch unit {
	case Pixel:
		return value
	case Em, Rem:
		return value * frame.BaseFontSizePx
	case Percent:
		return value * frame.ContainerSizePx / 100
	case ViewportHeight:
		return value * frame.ViewportHeightPx / 100
	case ViewportWidth:
		return value * frame.ViewportWidthPx / 100
	case ViewportMin:
		return value * frame.viewportMin() / 100
	case ViewportMax:
		return value * frame.viewportMax() / 100
	case Point:
		return value / pointsPerPx
	case Pica:
		return value * pxPerPica
	case Inch:
		return value * pxPerInch
	case Centimeter:
		return value * pxPerCentimeter
	case Millimeter:
		return value * pxPerMillimeter
	default:
		return math.NaN()
	}
}

// FromPixels is the inverse of ToPixels.
func FromPixels(px float64, unit Unit, frame ReferenceFrame) float64 {
	switch unit {
	case Pixel:
		return px
	case Em, Rem:
		return px / frame.BaseFontSizePx
	case Percent:
		return px / frame.ContainerSizePx * 100
	case ViewportHeight:
		return px / frame.ViewportHeightPx * 100
	case ViewportWidth:
		return px / frame.ViewportWidthPx * 100
	case ViewportMin:
		return px / frame.viewportMin() * 100
	case ViewportMax:
		return px / frame.viewportMax() * 100
	case Point:
		return px * pointsPerPx
	case Pica:
		return px / pxPerPica
	case Inch:
		return px / pxPerInch
	case Centimeter:
		return px / pxPerCentimeter
	case Millimeter:
		return px / pxPerMillimeter
	default:
		return math.NaN()
	}
}

// Table converts value into every supported unit, ordered as Units(). It returns an empty
// slice when value is not finite, from is unknown, or the frame is invalid, and also when
// any conversion overflows float64.
func Table(value float64, from Unit, frame ReferenceFrame) []Result {
	if !isFinite(value) || !from.Valid() || frame.Validate() != nil {
		return []Result{}
	}

	px := ToPixels(value, from, frame)
	if !isFinite(px) {
		return []Result{}
	}

	results := make([]Result, 0, len(allUnits))
	for _, target := range allUnits {
		converted := value
		if target != from {
			converted = FromPixels(px, target, frame)
		}
		if !isFinite(converted) {
			return []Result{}
		}
		if converted == 0 {
			converted = 0 // drop negative zero
		}
		results = append(results, Result{
			Unit:      target,
			Value:     converted,
			Formatted: target.Format(converted),
		})
	}
	return results
}

// Convert returns the formatted magnitude of value in every supported unit, keyed by unit.
// Invalid input produces an empty map.
func Convert(value float64, from Unit, frame ReferenceFrame) map[Unit]string {
	table := Table(value, from, frame)
	out := make(map[Unit]string, len(table))
	for _, r := range table {
		out[r.Unit] = r.Formatted
	}
	return out
}

// ParseMagnitude parses a decimal magnitude, rejecting empty, non-numeric and non-finite input.
func ParseMagnitude(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !isFinite(value) {
		return 0, false
	}
	return value, true
}

// ConvertString is Convert for a magnitude that still needs parsing.
func ConvertString(raw string, from Unit, frame ReferenceFrame) map[Unit]string {
	value, ok := ParseMagnitude(raw)
	if !ok {
		return map[Unit]string{}
	}
	return Convert(value, from, frame)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
