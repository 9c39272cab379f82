package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/devtools/internal/colormath"
	"github.com/alexisbeaulieu97/devtools/internal/units"
	"github.com/alexisbeaulieu97/devtools/internal/validation"
)

// Config tags are registered on the shared validator at init, before anything validates.
func init() {
	validation.MustRegister("hexcolor6", func(fl validator.FieldLevel) bool {
		_, ok := colormath.ParseHex(fl.Field().String())
		return ok
	})
	validation.MustRegister("strategy", func(fl validator.FieldLevel) bool {
		_, ok := colormath.ParseStrategy(fl.Field().String())
		return ok
	})
	validation.MustRegister("unit", func(fl validator.FieldLevel) bool {
		_, err := units.ParseUnit(fl.Field().String())
		return err == nil
	})
	validation.MustRegister("loglevel", func(fl validator.FieldLevel) bool {
		_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
		return err == nil
	})
}
