package colormath

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

func hueDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 360))
	return math.Min(d, 360-d)
}

func TestRGBToHSLKnownColours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hex  string
		want HSL
	}{
		{hex: "#ff0000", want: HSL{H: 0, S: 100, L: 50}},
		{hex: "#00ff00", want: HSL{H: 120, S: 100, L: 50}},
		{hex: "#0000ff", want: HSL{H: 240, S: 100, L: 50}},
		{hex: "#ffffff", want: HSL{H: 0, S: 0, L: 100}},
		{hex: "#000000", want: HSL{H: 0, S: 0, L: 0}},
		{hex: "#808080", want: HSL{H: 0, S: 0, L: 50.19607843137255}},
		{hex: "#ff00ff", want: HSL{H: 300, S: 100, L: 50}},
	}

	for _, tc := range cases {
		t.Run(tc.hex, func(t *testing.T) {
			t.Parallel()

			got, ok := HexToHSL(tc.hex)
			require.True(t, ok)
			require.InDelta(t, tc.want.H, got.H, 1e-9)
			require.InDelta(t, tc.want.S, got.S, 1e-9)
			require.InDelta(t, tc.want.L, got.L, 1e-9)
		})
	}
}

func TestRGBToHSLAgreesWithColorful(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#3b82f6", "#22c55e", "#a855f7", "#f97316", "#0f172a", "#e11d48", "#14b8a6"} {
		ref, err := colorful.Hex(hex)
		require.NoError(t, err)
		wantH, wantS, wantL := ref.Hsl()

		got, ok := HexToHSL(hex)
		require.True(t, ok)
		require.LessOrEqual(t, hueDistance(wantH, got.H), 1e-6, hex)
		require.InDelta(t, wantS*100, got.S, 1e-6, hex)
		require.InDelta(t, wantL*100, got.L, 1e-6, hex)
	}
}

func TestHueStaysInRange(t *testing.T) {
	t.Parallel()

	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := RGBToHSL(RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
				require.GreaterOrEqual(t, c.H, 0.0)
				require.Less(t, c.H, 360.0)
				require.GreaterOrEqual(t, c.S, 0.0)
				require.LessOrEqual(t, c.S, 100.0+1e-9)
				require.GreaterOrEqual(t, c.L, 0.0)
				require.LessOrEqual(t, c.L, 100.0+1e-9)
			}
		}
	}
}

func TestHSLRoundTripWithinOneStep(t *testing.T) {
	t.Parallel()

	channelDiff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}

	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				in := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				out := HSLToRGB(RGBToHSL(in))
				require.LessOrEqual(t, channelDiff(in.R, out.R), 1, "%v -> %v", in, out)
				require.LessOrEqual(t, channelDiff(in.G, out.G), 1, "%v -> %v", in, out)
				require.LessOrEqual(t, channelDiff(in.B, out.B), 1, "%v -> %v", in, out)
			}
		}
	}
}

func TestHSLToHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0000", HSLToHex(HSL{H: 0, S: 100, L: 50}))
	require.Equal(t, "#00ff00", HSLToHex(HSL{H: 120, S: 100, L: 50}))
	require.Equal(t, "#0000ff", HSLToHex(HSL{H: 240, S: 100, L: 50}))
	require.Equal(t, "#999999", HSLToHex(HSL{H: 210, S: 0, L: 60}))
	require.Equal(t, "#000000", HSLToHex(HSL{H: 0, S: 100, L: 0}))
	require.Equal(t, "#ffffff", HSLToHex(HSL{H: 0, S: 100, L: 100}))
}

func TestHSLString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hsl(217, 91%, 60%)", HSL{H: 217.2, S: 91.2, L: 59.8}.String())
	require.Equal(t, "hsl(0, 0%, 100%)", HSL{H: 359.8, S: 0, L: 100}.String())
}
