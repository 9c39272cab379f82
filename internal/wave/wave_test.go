package wave

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathForDefaultConfig(t *testing.T) {
	t.Parallel()

	path, ok := Path(DefaultConfig())
	require.True(t, ok)
	require.Equal(t, "M 0,50"+
		" C 50,50 50,67.63 100,67.63"+
		" C 150,67.63 150,78.53 200,78.53"+
		" C 250,78.53 250,78.53 300,78.53"+
		" C 350,78.53 350,67.63 400,67.63"+
		" C 450,67.63 450,50 500,50"+
		" C 550,50 550,32.37 600,32.37"+
		" C 650,32.37 650,21.47 700,21.47"+
		" C 750,21.47 750,21.47 800,21.47", path)
}

func TestPathIsFlatWithoutAmplitude(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Amplitude = 0
	cfg.Points = 1
	path, ok := Path(cfg)
	require.True(t, ok)
	require.Equal(t, "M 0,50 C 200,50 200,50 400,50 C 600,50 600,50 800,50", path)
}

func TestPathSegmentCount(t *testing.T) {
	t.Parallel()

	for _, points := range []int{1, 3, 10} {
		cfg := DefaultConfig()
		cfg.Points = points
		path, ok := Path(cfg)
		require.True(t, ok)
		require.Equal(t, points*2, strings.Count(path, " C "))
		require.True(t, strings.HasPrefix(path, "M 0,"))
		last := strings.Fields(path)[len(strings.Fields(path))-1]
		require.True(t, strings.HasPrefix(last, "800,"), last)
	}
}

func TestInvalidConfigIsRejected(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "zero height", mutate: func(c *Config) { c.Height = 0 }, field: "height"},
		{name: "negative amplitude", mutate: func(c *Config) { c.Amplitude = -1 }, field: "amplitude"},
		{name: "infinite frequency", mutate: func(c *Config) { c.Frequency = math.Inf(1) }, field: "frequency"},
		{name: "no points", mutate: func(c *Config) { c.Points = 0 }, field: "points"},
		{name: "stroke injection", mutate: func(c *Config) { c.Stroke = `red" onload="x` }, field: "stroke"},
		{name: "fill keyword", mutate: func(c *Config) { c.Fill = "transparent" }, field: "fill"},
		{name: "nan stroke width", mutate: func(c *Config) { c.StrokeWidth = math.NaN() }, field: "stroke_width"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			require.ErrorContains(t, cfg.Validate(), tc.field)
			path, ok := Path(cfg)
			require.False(t, ok)
			require.Empty(t, path)
			svg, ok := SVG(cfg)
			require.False(t, ok)
			require.Empty(t, svg)
		})
	}
}

func TestSVGDocument(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Fill = "#E0E7FF"
	cfg.StrokeWidth = 1.5

	svg, ok := SVG(cfg)
	require.True(t, ok)

	path, _ := Path(cfg)
	require.True(t, strings.HasPrefix(svg, `<svg width="100%" height="100" viewBox="0 0 800 100" xmlns="http://www.w3.org/2000/svg">`))
	require.Contains(t, svg, `d="`+path+`"`)
	require.Contains(t, svg, `stroke="#4f46e5"`)
	require.Contains(t, svg, `fill="#E0E7FF"`)
	require.Contains(t, svg, `stroke-width="1.5"`)
	require.True(t, strings.HasSuffix(svg, "</svg>"))
}
