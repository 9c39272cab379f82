package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/devtools/internal/validation"
	devtoolserrors "github.com/alexisbeaulieu97/devtools/pkg/errors"
)

// ValidateConfig performs structural validation on a configuration document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return devtoolserrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validation.Instance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError normalizes validator errors into devtools validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return devtoolserrors.NewValidationError(field, msg, err)
	}

	return devtoolserrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the yaml-tagged namespace.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
