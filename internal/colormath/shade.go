package colormath

import "math"

// Lighten adds amount to every channel, saturating at 255.
func Lighten(hex string, amount int) (string, bool) {
	return adjust(hex, amount)
}

// Darken subtracts amount from every channel, saturating at 0.
func Darken(hex string, amount int) (string, bool) {
	return adjust(hex, -amount)
}

// ShadePair returns the dark and light shadow colours used for soft-UI surfaces. Intensity
// is a fraction in [0,1] of the full channel range; out-of-range values clamp and NaN is
// rejected.
func ShadePair(hex string, intensity float64) (dark, light string, ok bool) {
	if math.IsNaN(intensity) {
		return "", "", false
	}
	amount := int(math.Round(math.Max(0, math.Min(1, intensity)) * 255))
	if dark, ok = Darken(hex, amount); !ok {
		return "", "", false
	}
	light, _ = Lighten(hex, amount)
	return dark, light, true
}

func adjust(hex string, delta int) (string, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return "", false
	}
	return RGB{
		R: clampChannel(int(rgb.R) + delta),
		G: clampChannel(int(rgb.G) + delta),
		B: clampChannel(int(rgb.B) + delta),
	}.Hex(), true
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
