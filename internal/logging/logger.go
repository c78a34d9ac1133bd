package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls optional rotated file output.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, consoleOrJSON(cfg, os.Stderr))
}

// NewWithFile creates a logger that writes to stderr and, when file.Path is set,
// to a lumberjack-rotated log file. The returned cleanup closes the file.
func NewWithFile(cfg Config, file FileConfig) (zerolog.Logger, func(), error) {
	const logDirPerm = 0o750

	if file.Path == "" {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(file.Path), logDirPerm); err != nil {
		return New(cfg), func() {}, err
	}

	lj := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
		Compress:   file.Compress,
	}

	// The file always gets JSON; stderr follows the configured format.
	out := zerolog.MultiLevelWriter(consoleOrJSON(cfg, os.Stderr), lj)
	cleanup := func() { _ = lj.Close() }

	return newLogger(cfg, out), cleanup, nil
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func consoleOrJSON(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "console" {
		return zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	}
	return w
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
