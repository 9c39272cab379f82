package units

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/devtools/internal/validation"
)

// ReferenceFrame holds the external measurements needed to resolve relative units.
type ReferenceFrame struct {
	BaseFontSizePx   float64 `yaml:"base_font_size" json:"base_font_size" validate:"gt=0,finite"`
	ViewportWidthPx  float64 `yaml:"viewport_width" json:"viewport_width" validate:"gt=0,finite"`
	ViewportHeightPx float64 `yaml:"viewport_height" json:"viewport_height" validate:"gt=0,finite"`
	ContainerSizePx  float64 `yaml:"container_size" json:"container_size" validate:"gt=0,finite"`
}

// DefaultFrame returns a 16px font size on a 1920x1080 viewport with a 1000px container.
func DefaultFrame() ReferenceFrame {
	return ReferenceFrame{
		BaseFontSizePx:   16,
		ViewportWidthPx:  1920,
		ViewportHeightPx: 1080,
		ContainerSizePx:  1000,
	}
}

// Validate reports the first non-positive or non-finite dimension.
func (f ReferenceFrame) Validate() error {
	if err := validation.Instance().Struct(f); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			return fmt.Errorf("reference frame: %s must be a positive finite number", ves[0].StructField())
		}
		return fmt.Errorf("reference frame: %w", err)
	}
	return nil
}

func (f ReferenceFrame) viewportMin() float64 {
	return math.Min(f.ViewportWidthPx, f.ViewportHeightPx)
}

func (f ReferenceFrame) viewportMax() float64 {
	return math.Max(f.ViewportWidthPx, f.ViewportHeightPx)
}
