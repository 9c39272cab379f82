// Package colormath converts colours between hex, RGB and HSL encodings and derives
// related-colour palettes by rotating hue or offsetting lightness.
//
// All functions are pure. Malformed input is reported with a false boolean or an empty
// result rather than an error, so callers can simply render nothing.
package colormath
