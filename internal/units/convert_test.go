package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertSixteenPixelsInDefaultFrame(t *testing.T) {
	t.Parallel()

	got := Convert(16, Pixel, DefaultFrame())
	want := map[Unit]string{
		Pixel:          "16.00",
		Em:             "1.0000",
		Rem:            "1.0000",
		Percent:        "1.60",
		ViewportHeight: "1.48",
		ViewportWidth:  "0.83",
		ViewportMin:    "1.48",
		ViewportMax:    "0.83",
		Point:          "12.00",
		Pica:           "1.0000",
		Inch:           "0.1667",
		Centimeter:     "0.4233",
		Millimeter:     "4.23",
	}
	require.Equal(t, want, got)
}

func TestConvertFromRelativeUnits(t *testing.T) {
	t.Parallel()

	frame := DefaultFrame()

	cases := []struct {
		name  string
		value float64
		from  Unit
		check map[Unit]string
	}{
		{name: "percent of container", value: 100, from: Percent, check: map[Unit]string{Pixel: "1000.00", Percent: "100.00"}},
		{name: "rem", value: 1.5, from: Rem, check: map[Unit]string{Pixel: "24.00", Em: "1.5000", Rem: "1.5000", Point: "18.00"}},
		{name: "viewport height", value: 50, from: ViewportHeight, check: map[Unit]string{Pixel: "540.00", ViewportWidth: "28.13", ViewportMin: "50.00"}},
		{name: "viewport width", value: 10, from: ViewportWidth, check: map[Unit]string{Pixel: "192.00", ViewportMax: "10.00", ViewportHeight: "17.78"}},
		{name: "vmin uses smaller side", value: 100, from: ViewportMin, check: map[Unit]string{Pixel: "1080.00"}},
		{name: "vmax uses larger side", value: 100, from: ViewportMax, check: map[Unit]string{Pixel: "1920.00"}},
		{name: "inch", value: 1, from: Inch, check: map[Unit]string{Pixel: "96.00", Point: "72.00", Pica: "6.0000", Centimeter: "2.5397", Millimeter: "25.40"}},
		{name: "point", value: 12, from: Point, check: map[Unit]string{Pixel: "16.00", Em: "1.0000"}},
		{name: "pica", value: 1, from: Pica, check: map[Unit]string{Pixel: "16.00", Point: "12.00"}},
		{name: "centimetre", value: 1, from: Centimeter, check: map[Unit]string{Pixel: "37.80", Millimeter: "10.00"}},
		{name: "millimetre", value: 10, from: Millimeter, check: map[Unit]string{Pixel: "37.80", Centimeter: "1.0000"}},
		{name: "negative values convert", value: -8, from: Pixel, check: map[Unit]string{Em: "-0.5000"}},
		{name: "zero is not negative", value: 0, from: Pixel, check: map[Unit]string{Pixel: "0.00", Inch: "0.0000"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Convert(tc.value, tc.from, frame)
			require.Len(t, got, len(Units()))
			for unit, want := range tc.check {
				require.Equal(t, want, got[unit], "unit %s", unit)
			}
		})
	}
}

func TestConvertRespectsCustomFrame(t *testing.T) {
	t.Parallel()

	frame := ReferenceFrame{BaseFontSizePx: 20, ViewportWidthPx: 800, ViewportHeightPx: 1200, ContainerSizePx: 400}

	got := Convert(40, Pixel, frame)
	require.Equal(t, "2.0000", got[Em])
	require.Equal(t, "10.00", got[Percent])
	require.Equal(t, "5.00", got[ViewportMin])
	require.Equal(t, "3.33", got[ViewportMax])
}

func TestConvertRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	frame := DefaultFrame()
	require.Empty(t, Convert(math.NaN(), Pixel, frame))
	require.Empty(t, Convert(math.Inf(1), Pixel, frame))
	require.Empty(t, Convert(16, Unit("furlong"), frame))

	for _, mutate := range []func(*ReferenceFrame){
		func(f *ReferenceFrame) { f.BaseFontSizePx = 0 },
		func(f *ReferenceFrame) { f.ViewportWidthPx = -1 },
		func(f *ReferenceFrame) { f.ViewportHeightPx = math.NaN() },
		func(f *ReferenceFrame) { f.ContainerSizePx = math.Inf(1) },
	} {
		bad := DefaultFrame()
		mutate(&bad)
		got := Convert(16, Pixel, bad)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestConvertString(t *testing.T) {
	t.Parallel()

	frame := DefaultFrame()
	require.Equal(t, "1.0000", ConvertString(" 16 ", Pixel, frame)[Rem])
	require.Equal(t, "24.00", ConvertString("1.5", Em, frame)[Pixel])

	for _, raw := range []string{"", "abc", "16px", "NaN", "Inf"} {
		got := ConvertString(raw, Pixel, frame)
		require.NotNil(t, got, raw)
		require.Empty(t, got, raw)
	}
}

func TestRoundTripThroughEveryUnit(t *testing.T) {
	t.Parallel()

	frame := DefaultFrame()
	for _, px := range []float64{0, 1, 16, 123.45, 1000, 2560} {
		for _, unit := range Units() {
			formatted := Convert(px, Pixel, frame)[unit]
			value, ok := ParseMagnitude(formatted)
			require.True(t, ok)

			// Half a step in the unit's last printed decimal, expressed in pixels.
			tolerance := 0.5 * math.Pow10(-unit.Precision()) * ToPixels(1, unit, frame)
			require.InDelta(t, px, ToPixels(value, unit, frame), tolerance+1e-9, "%vpx via %s", px, unit)
		}
	}
}

func TestTableOrderFollowsUnits(t *testing.T) {
	t.Parallel()

	table := Table(2, Rem, DefaultFrame())
	require.Len(t, table, len(Units()))
	for i, unit := range Units() {
		require.Equal(t, unit, table[i].Unit)
	}
	require.Equal(t, "32.00px", table[0].String())
	require.InDelta(t, 32.0, table[0].Value, 1e-12)

	require.Empty(t, Table(1, Pixel, ReferenceFrame{}))
}

func TestToAndFromPixelsAreInverse(t *testing.T) {
	t.Parallel()

	frame := DefaultFrame()
	for _, unit := range Units() {
		require.InDelta(t, 7.25, FromPixels(ToPixels(7.25, unit, frame), unit, frame), 1e-9, unit)
	}
	require.True(t, math.IsNaN(ToPixels(1, Unit("ly"), frame)))
	require.True(t, math.IsNaN(FromPixels(1, Unit("ly"), frame)))
}

func TestConvertHandlesMagnitudesNearFloatLimits(t *testing.T) {
	t.Parallel()

	got := ConvertString("1e307", Pixel, DefaultFrame())
	require.Len(t, got, len(Units()))
	for unit, formatted := range got {
		require.NotContains(t, formatted, "Inf", unit)
		_, ok := ParseMagnitude(formatted)
		require.True(t, ok, "%s: %s", unit, formatted)
	}

	require.Empty(t, ConvertString("1e308", Inch, DefaultFrame()))

	tiny := DefaultFrame()
	tiny.ContainerSizePx = 0.5
	require.Empty(t, Table(1.7e308, Pixel, tiny))
}

func TestFormatKeepsHugeFiniteValues(t *testing.T) {
	t.Parallel()

	formatted := Pixel.Format(1e307)
	require.NotContains(t, formatted, "Inf")
	require.True(t, len(formatted) > 300)

	parsed, ok := ParseMagnitude(formatted)
	require.True(t, ok)
	require.InDelta(t, 1.0, parsed/1e307, 1e-12)

	require.Equal(t, "+Inf", Pixel.Format(math.Inf(1)))
}
