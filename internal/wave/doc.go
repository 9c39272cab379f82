// Package wave generates smooth sine-wave SVG paths from a handful of numeric settings.
package wave
