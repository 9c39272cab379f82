package colormath

import "math/rand/v2"

// RandomHex returns a uniformly random #rrggbb colour. A nil source uses the global generator.
func RandomHex(src *rand.Rand) string {
	var v uint32
	if src == nil {
		v = rand.Uint32N(1 << 24)
	} else {
		v = src.Uint32N(1 << 24)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}.Hex()
}
