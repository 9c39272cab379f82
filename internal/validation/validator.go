// Package validation owns the struct validator shared by configuration and unit conversion.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator. Field names follow yaml tags and the "finite" tag
// rejects NaN and infinities.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})
		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		validateInst = v
	})
	return validateInst
}

// MustRegister adds a custom tag to the shared validator. Call it from an init function:
// the validator must not be mutated while another goroutine validates.
func MustRegister(tag string, fn validator.Func) {
	if err := Instance().RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}
