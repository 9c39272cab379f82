package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// Component is attached to every entry when set, e.g. "color" or "units".
	Component string
}

// Fields are structured key/value pairs attached to a single entry.
type Fields map[string]any

// Logger wraps zerolog so commands log through one small API.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger. Diagnostics go to stderr unless a Writer is given, so
// tool output on stdout stays clean.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger carrying one extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return false
	}
	return parsed >= l.base.GetLevel()
}

func (l *Logger) Debug(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	write(l.base.Debug(), fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	write(l.base.Info(), fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields ...Fields) {
	if l == nil {
		return
	}
	write(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error entry including the supplied error context.
func (l *Logger) Error(err error, msg string, fields ...Fields) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	write(event, fields).Msg(msg)
}

func write(event *zerolog.Event, fields []Fields) *zerolog.Event {
	for _, set := range fields {
		for key, value := range set {
			event = event.Interface(key, value)
		}
	}
	return event
}
