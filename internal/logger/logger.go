// Package logger configures the application's logging.
//
// It uses zerolog for structured logging: human-friendly console
// output in the local environment, JSON everywhere else. It also
// provides the adapters the database layer needs to route pgx query
// tracing through zerolog.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New builds the application's main logger.
//
// env selects the output format: "local" gets a console writer, every
// other environment gets JSON on stderr. level is parsed leniently;
// unknown values fall back to info.
func New(env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(ParseLevel(level)).With().
		Timestamp().
		Str("env", env).
		Logger()
}

// ParseLevel converts a config level string to a zerolog level,
// defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

// NewPgxLogger builds the logger the pgx tracelog adapter writes SQL
// query logs to. Always console format: query logging is only enabled
// in the local environment.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the application log level onto pgx's
// tracelog levels so SQL logging verbosity follows the app's.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
