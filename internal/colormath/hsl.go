package colormath

import (
	"fmt"
	"math"
)

// HSL is a colour in hue/saturation/lightness form. H is in degrees [0,360); S and L are
// percentages in [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String renders the colour in CSS functional notation, rounded to whole units.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Round(c.H))%360, int(math.Round(c.S)), int(math.Round(c.L)))
}

// RGBToHSL converts 8-bit channels to HSL. Achromatic colours have H=0 and S=0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))

	var h, s float64
	l := (maxC + minC) / 2

	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{H: math.Mod(h*360, 360), S: s * 100, L: l * 100}
}

// HexToHSL parses a strict #RRGGBB string and converts it to HSL.
func HexToHSL(hex string) (HSL, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return HSL{}, false
	}
	return RGBToHSL(rgb), true
}

// HSLToRGB converts HSL to 8-bit channels. Callers must keep H in [0,360) and S, L in [0,100].
func HSLToRGB(c HSL) RGB {
	h := c.H / 360
	s := c.S / 100
	l := c.L / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	return RGB{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

// HSLToHex converts HSL to a lowercase #rrggbb string.
func HSLToHex(c HSL) string {
	return HSLToRGB(c).Hex()
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toChannel(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
