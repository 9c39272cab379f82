package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: config.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: config.yaml: permission denied", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("frame.base_font_size", "must be greater than zero", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "frame.base_font_size", validationErr.Field)
	require.Contains(t, err.Error(), "must be greater than zero")

	bare := NewValidationError("", "config is empty", nil)
	require.Equal(t, "validation error: config is empty", bare.Error())
}

func TestInputErrorDescribesValue(t *testing.T) {
	t.Parallel()

	err := NewInputError(InputColor, "#12", "expected #RRGGBB")

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, InputColor, inputErr.Kind)
	require.Equal(t, "#12", inputErr.Value)
	require.Equal(t, `invalid color "#12": expected #RRGGBB`, err.Error())
	require.Nil(t, stdErrors.Unwrap(err))
}

func TestWrapInputErrorKeepsCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New(`unknown unit "furlong"`)
	err := WrapInputError(InputUnit, "furlong", cause)
	require.True(t, stdErrors.Is(err, cause))
	require.Contains(t, err.Error(), "invalid unit")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var inputErr *InputError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, inputErr.Error())
	require.Nil(t, inputErr.Unwrap())
}
