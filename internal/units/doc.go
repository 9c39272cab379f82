// Package units converts CSS length values between absolute and relative units.
//
// Every conversion goes through pixels: the source magnitude is normalised to px using a
// ReferenceFrame, then each target unit is derived from that pixel value.
package units
