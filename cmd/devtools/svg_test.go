package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/devtools/internal/wave"
	devtoolserrors "github.com/alexisbeaulieu97/devtools/pkg/errors"
)

func TestSVGWaveDefaults(t *testing.T) {
	output, err := executeCommand(t, "svg", "wave")
	require.NoError(t, err)

	want, ok := wave.SVG(wave.DefaultConfig())
	require.True(t, ok)
	require.Equal(t, want+"\n", output)
}

func TestSVGWavePathOnly(t *testing.T) {
	output, err := executeCommand(t, "svg", "wave", "--path-only", "--points", "1", "--amplitude", "0")
	require.NoError(t, err)
	require.Equal(t, "M 0,50 C 200,50 200,50 400,50 C 600,50 600,50 800,50\n", output)
}

func TestSVGWaveFlags(t *testing.T) {
	output, err := executeCommand(t, "svg", "wave", "--height", "60", "--fill", "#ffffff", "--stroke", "#000", "--stroke-width", "3")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(output, `<svg width="100%" height="60" viewBox="0 0 800 60"`))
	require.Contains(t, output, `fill="#ffffff"`)
	require.Contains(t, output, `stroke="#000"`)
	require.Contains(t, output, `stroke-width="3"`)
}

func TestSVGWaveRejectsBadSettings(t *testing.T) {
	for _, args := range [][]string{
		{"--points", "0"},
		{"--height", "-10"},
		{"--stroke", "blue"},
		{"--stroke-width", "NaN"},
	} {
		output, err := executeCommand(t, append([]string{"svg", "wave"}, args...)...)
		require.Error(t, err, args)
		require.Empty(t, output)

		var inputErr *devtoolserrors.InputError
		require.ErrorAs(t, err, &inputErr)
		require.Equal(t, devtoolserrors.InputWave, inputErr.Kind)
	}
}
