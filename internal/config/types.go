package config

import (
	"github.com/alexisbeaulieu97/devtools/internal/colormath"
	"github.com/alexisbeaulieu97/devtools/internal/units"
)

// Config is the devtools configuration document. Every section is optional; zero values
// fall back to Default().
type Config struct {
	Frame   FrameSettings   `yaml:"frame,omitempty"`
	Palette PaletteSettings `yaml:"palette,omitempty"`
	Units   UnitSettings    `yaml:"units,omitempty"`
	Log     LogSettings     `yaml:"log,omitempty"`
}

// FrameSettings overrides the reference measurements used by unit conversion. Zero means
// "use the default".
type FrameSettings struct {
	BaseFontSize   float64 `yaml:"base_font_size,omitempty" validate:"gte=0,finite"`
	ViewportWidth  float64 `yaml:"viewport_width,omitempty" validate:"gte=0,finite"`
	ViewportHeight float64 `yaml:"viewport_height,omitempty" validate:"gte=0,finite"`
	ContainerSize  float64 `yaml:"container_size,omitempty" validate:"gte=0,finite"`
}

// PaletteSettings selects the default palette strategy and base colour.
type PaletteSettings struct {
	Strategy string `yaml:"strategy,omitempty" validate:"omitempty,strategy"`
	Base     string `yaml:"base,omitempty" validate:"omitempty,hexcolor6"`
}

// UnitSettings selects the unit assumed when none is given.
type UnitSettings struct {
	DefaultUnit string `yaml:"default_unit,omitempty" validate:"omitempty,unit"`
}

// LogSettings configures diagnostics.
type LogSettings struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,loglevel"`
	HumanReadable *bool  `yaml:"human_readable,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	frame := units.DefaultFrame()
	human := true
	return &Config{
		Frame: FrameSettings{
			BaseFontSize:   frame.BaseFontSizePx,
			ViewportWidth:  frame.ViewportWidthPx,
			ViewportHeight: frame.ViewportHeightPx,
			ContainerSize:  frame.ContainerSizePx,
		},
		Palette: PaletteSettings{Strategy: colormath.Analogous.String(), Base: "#3b82f6"},
		Units:   UnitSettings{DefaultUnit: string(units.Pixel)},
		Log:     LogSettings{Level: "info", HumanReadable: &human},
	}
}

// ApplyDefaults fills every unset field from Default().
func (c *Config) ApplyDefaults() {
	def := Default()

	if c.Frame.BaseFontSize == 0 {
		c.Frame.BaseFontSize = def.Frame.BaseFontSize
	}
	if c.Frame.ViewportWidth == 0 {
		c.Frame.ViewportWidth = def.Frame.ViewportWidth
	}
	if c.Frame.ViewportHeight == 0 {
		c.Frame.ViewportHeight = def.Frame.ViewportHeight
	}
	if c.Frame.ContainerSize == 0 {
		c.Frame.ContainerSize = def.Frame.ContainerSize
	}
	if c.Palette.Strategy == "" {
		c.Palette.Strategy = def.Palette.Strategy
	}
	if c.Palette.Base == "" {
		c.Palette.Base = def.Palette.Base
	}
	if c.Units.DefaultUnit == "" {
		c.Units.DefaultUnit = def.Units.DefaultUnit
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.HumanReadable == nil {
		c.Log.HumanReadable = def.Log.HumanReadable
	}
}

// ReferenceFrame converts the frame settings for the units package.
func (c *Config) ReferenceFrame() units.ReferenceFrame {
	return units.ReferenceFrame{
		BaseFontSizePx:   c.Frame.BaseFontSize,
		ViewportWidthPx:  c.Frame.ViewportWidth,
		ViewportHeightPx: c.Frame.ViewportHeight,
		ContainerSizePx:  c.Frame.ContainerSize,
	}
}

// Strategy resolves the configured palette strategy, falling back to Analogous.
func (c *Config) Strategy() colormath.Strategy {
	s, ok := colormath.ParseStrategy(c.Palette.Strategy)
	if !ok {
		return colormath.Analogous
	}
	return s
}

// DefaultUnit resolves the configured unit, falling back to px.
func (c *Config) DefaultUnit() units.Unit {
	u, err := units.ParseUnit(c.Units.DefaultUnit)
	if err != nil {
		return units.Pixel
	}
	return u
}

// HumanReadableLogs reports whether console-formatted logs were requested.
func (c *Config) HumanReadableLogs() bool {
	return c.Log.HumanReadable == nil || *c.Log.HumanReadable
}
