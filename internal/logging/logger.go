// Package logging wraps zerolog with the conventions used across pinboard:
// a context-carried logger and level/format selection from config or env.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to stderr.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return zerolog.New(consoleWriter(cfg)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// NewFromConfigValues builds a stderr logger from config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	cfg.TimeFormat = "15:04:05"
	return New(cfg)
}

// FileConfig configures the rotating log file.
type FileConfig struct {
	Dir        string
	Name       string // defaults to pinboard.log
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewWithFile builds a logger writing JSON lines to a rotating file. Events
// at consoleLevel or above are also written to cfg.Output (stderr by
// default); zerolog.Disabled keeps the console silent. The returned cleanup
// closes the file.
func NewWithFile(cfg Config, file FileConfig, consoleLevel zerolog.Level) (zerolog.Logger, func(), error) {
	rotator, err := NewFileRotator(file)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	writers := []io.Writer{rotator}
	if consoleLevel != zerolog.Disabled {
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter(cfg)},
			Level:  consoleLevel,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	cleanup := func() { _ = rotator.Close() }
	return logger, cleanup, nil
}

// ConsoleLevel is the stderr threshold for one-shot commands: warnings and
// errors, unless debug or trace was asked for.
func ConsoleLevel(level zerolog.Level) zerolog.Level {
	if level <= zerolog.DebugLevel || level >= zerolog.WarnLevel {
		return level
	}
	return zerolog.WarnLevel
}

func consoleWriter(cfg Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
}

// NewFromEnv creates a logger based on environment variables
// PINBOARD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// PINBOARD_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("PINBOARD_LOG_LEVEL"), os.Getenv("PINBOARD_LOG_FORMAT"))
}
