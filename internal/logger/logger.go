// Package logger provides logging utilities for the dateutil CLI using the bullets library.
//
// It wraps [bullets.Logger] with convenience constructors for creating loggers
// at various levels and a silent logger for use in tests or when no output is desired.
//
// Usage:
//
//	log := logger.NewLogger(os.Stderr, "debug")
//	log.Debug("Configuration loaded")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"strings"

	"github.com/sgaunet/bullets"
)

// Levels lists the accepted --log-level values.
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// NewLogger creates a logger that writes to w at the specified level.
//
// Parameters:
//   - w: destination, normally stderr so results on stdout stay clean
//   - logLevel: one of "debug", "info", "warn", "error" (defaults to "info" for unknown values)
func NewLogger(w io.Writer, logLevel string) *bullets.Logger {
	logger := bullets.New(w)
	logger.SetLevel(level(logLevel))
	return logger
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
// Useful for tests and silent operation.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}

func level(logLevel string) bullets.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return bullets.DebugLevel
	case "info":
		return bullets.InfoLevel
	case "warn":
		return bullets.WarnLevel
	case "error":
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}
