package colormath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern      = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	looseHexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// RGB is a colour with three 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex encodes the colour as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the colour in CSS functional notation.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex parses a strict #RRGGBB string. The boolean is false when the input does not
// match that pattern; no error is produced for malformed input.
func ParseHex(hex string) (RGB, bool) {
	matches := hexPattern.FindStringSubmatch(hex)
	if matches == nil {
		return RGB{}, false
	}
	return RGB{
		R: parseChannel(matches[1]),
		G: parseChannel(matches[2]),
		B: parseChannel(matches[3]),
	}, true
}

// ParseHexLoose also accepts the #RGB shorthand and a missing leading '#'.
func ParseHexLoose(hex string) (RGB, bool) {
	trimmed := strings.TrimSpace(hex)
	matches := looseHexPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return RGB{}, false
	}

	digits := matches[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return ParseHex("#" + digits)
}

// NormalizeHex returns the lowercase #rrggbb form of a loosely formatted colour.
func NormalizeHex(hex string) (string, bool) {
	rgb, ok := ParseHexLoose(hex)
	if !ok {
		return "", false
	}
	return rgb.Hex(), true
}

// HexToRGBString converts #RRGGBB to "rgb(r, g, b)", or "" when the input does not match.
func HexToRGBString(hex string) string {
	rgb, ok := ParseHex(hex)
	if !ok {
		return ""
	}
	return rgb.String()
}

func parseChannel(digits string) uint8 {
	// Pattern guarantees two hex digits.
	v, _ := strconv.ParseUint(digits, 16, 8)
	return uint8(v)
}
