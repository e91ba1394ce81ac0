package common

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"go.elastic.co/ecszerolog"
)

// Severity represents log message severity levels
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) zerologLevel() zerolog.Level {
	switch s {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Logger interface defines the logging contract for the generators
type Logger interface {
	// Log logs a message with the specified severity
	Log(severity Severity, msg string)

	// Logf logs a formatted message with the specified severity
	Logf(severity Severity, format string, args ...interface{})

	// Error logs an error
	Error(err error)

	// Debug logs a debug message
	Debug(msg string)

	// Info logs an info message
	Info(msg string)

	// Warning logs a warning message
	Warning(msg string)
}

// LoggerOptions configures NewLogger.
type LoggerOptions struct {
	Name   string    // value of the "logger" field
	Level  string    // zerolog level name, e.g. "warn"
	Pretty bool      // console output instead of ECS JSON
	Out    io.Writer // defaults to os.Stderr; stdout carries generated source
}

// ZeroLogger implements Logger on top of zerolog.
type ZeroLogger struct {
	zl zerolog.Logger
}

// NewLogger creates a logger from options.
func NewLogger(opts LoggerOptions) (*ZeroLogger, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, oops.
			In("logger").
			Tags("constructor").
			Wrapf(err, "error parsing level '%s'", opts.Level)
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var ctx zerolog.Context
	if opts.Pretty {
		ctx = zerolog.New(zerolog.ConsoleWriter{
			Out:          out,
			TimeFormat:   time.RFC3339,
			TimeLocation: time.UTC,
			PartsOrder:   []string{"time", "level", "logger", "message"},
		}).With().Timestamp()
	} else {
		ctx = ecszerolog.New(out).With()
	}
	if opts.Name != "" {
		ctx = ctx.Str("logger", opts.Name)
	}

	return &ZeroLogger{zl: ctx.Logger().Level(level)}, nil
}

// NewLoggerWithWriter creates an ECS JSON logger writing to out, filtered at minLevel.
func NewLoggerWithWriter(out io.Writer, minLevel Severity) *ZeroLogger {
	return &ZeroLogger{zl: ecszerolog.New(out).Level(minLevel.zerologLevel())}
}

// Child returns a logger tagged with the given component name.
func (l *ZeroLogger) Child(name string) *ZeroLogger {
	return &ZeroLogger{zl: l.zl.With().Str("component", name).Logger()}
}

// Log logs a message with the specified severity
func (l *ZeroLogger) Log(severity Severity, msg string) {
	l.zl.WithLevel(severity.zerologLevel()).Msg(msg)
}

// Logf logs a formatted message with the specified severity
func (l *ZeroLogger) Logf(severity Severity, format string, args ...interface{}) {
	l.Log(severity, fmt.Sprintf(format, args...))
}

// Error logs an error
func (l *ZeroLogger) Error(err error) {
	if err != nil {
		l.zl.Error().Err(err).Msg(err.Error())
	}
}

// Debug logs a debug message
func (l *ZeroLogger) Debug(msg string) {
	l.Log(SeverityDebug, msg)
}

// Info logs an info message
func (l *ZeroLogger) Info(msg string) {
	l.Log(SeverityInfo, msg)
}

// Warning logs a warning message
func (l *ZeroLogger) Warning(msg string) {
	l.Log(SeverityWarning, msg)
}

// NoOpLogger is a logger that doesn't log anything
type NoOpLogger struct{}

// NewNoOpLogger creates a new no-op logger
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Log does nothing
func (l *NoOpLogger) Log(severity Severity, msg string) {}

// Logf does nothing
func (l *NoOpLogger) Logf(severity Severity, format string, args ...interface{}) {}

// Error does nothing
func (l *NoOpLogger) Error(err error) {}

// Debug does nothing
func (l *NoOpLogger) Debug(msg string) {}

// Info does nothing
func (l *NoOpLogger) Info(msg string) {}

// Warning does nothing
func (l *NoOpLogger) Warning(msg string) {}
