package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InputKind names the kind of user input that was rejected.
type InputKind string

const (
	InputColor     InputKind = "color"
	InputStrategy  InputKind = "strategy"
	InputUnit      InputKind = "unit"
	InputMagnitude InputKind = "magnitude"
	InputFrame     InputKind = "reference frame"
	InputCaseStyle InputKind = "case style"
	InputWave      InputKind = "wave setting"
)

// InputError reports a value that a tool could not interpret. The core packages signal
// this with empty results; the CLI turns that signal into an InputError.
type InputError struct {
	Kind    InputKind
	Value   string
	Message string
	Err     error
}

// NewInputError constructs an InputError for the offending value.
func NewInputError(kind InputKind, value, message string) error {
	return &InputError{Kind: kind, Value: value, Message: message}
}

// WrapInputError constructs an InputError that keeps the underlying cause.
func WrapInputError(kind InputKind, value string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &InputError{Kind: kind, Value: value, Message: message, Err: err}
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Value)
}

// Unwrap exposes the underlying error.
func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
