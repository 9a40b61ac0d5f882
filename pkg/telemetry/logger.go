// Package telemetry provides the picker engine's structured logging,
// progress reporting, and Prometheus instrumentation.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel is a supported logging level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat is a supported logging output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggerConfig configures a Logger.
type LoggerConfig struct {
	Level  LogLevel
	Format LogFormat
	Output io.Writer
}

// Logger wraps zerolog with the field-based API the rest of the engine
// uses, plus the Printf-style methods pkg/pick.Logger expects.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger builds a Logger from cfg.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var output io.Writer = cfg.Output
	if cfg.Format == LogFormatText {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger()

	switch cfg.Level {
	case LogLevelDebug:
		zlog = zlog.Level(zerolog.DebugLevel)
	case LogLevelWarn:
		zlog = zlog.Level(zerolog.WarnLevel)
	case LogLevelError:
		zlog = zlog.Level(zerolog.ErrorLevel)
	default:
		zlog = zlog.Level(zerolog.InfoLevel)
	}

	return &Logger{logger: zlog}
}

// Debug logs a debug message with key-value fields.
func (l *Logger) Debug(msg string, fields ...interface{}) { l.event(l.logger.Debug(), msg, fields...) }

// Info logs an info message with key-value fields.
func (l *Logger) Info(msg string, fields ...interface{}) { l.event(l.logger.Info(), msg, fields...) }

// Warn logs a warning message with key-value fields.
func (l *Logger) Warn(msg string, fields ...interface{}) { l.event(l.logger.Warn(), msg, fields...) }

// Error logs an error message with key-value fields.
func (l *Logger) Error(msg string, fields ...interface{}) { l.event(l.logger.Error(), msg, fields...) }

// Debugf implements pkg/pick.Logger.
func (l *Logger) Debugf(format string, args ...any) { l.logger.Debug().Msg(fmt.Sprintf(format, args...)) }

// Infof implements pkg/pick.Logger.
func (l *Logger) Infof(format string, args ...any) { l.logger.Info().Msg(fmt.Sprintf(format, args...)) }

// Warnf implements pkg/pick.Logger.
func (l *Logger) Warnf(format string, args ...any) { l.logger.Warn().Msg(fmt.Sprintf(format, args...)) }

// Errorf implements pkg/pick.Logger.
func (l *Logger) Errorf(format string, args ...any) { l.logger.Error().Msg(fmt.Sprintf(format, args...)) }

// WithField returns a child logger with an additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

func (l *Logger) event(event *zerolog.Event, msg string, fields ...interface{}) {
	if len(fields)%2 != 0 {
		event.Str("error", "odd number of fields")
		event.Msg(msg)
		return
	}
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			event.Str("error", fmt.Sprintf("field key at index %d is not a string", i))
			continue
		}
		event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
