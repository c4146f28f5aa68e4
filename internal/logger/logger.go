// Package logger builds the bullets loggers used by urlseg.
//
// Log output goes to stderr so that rendered segments on stdout can be piped.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Parsing input")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sgaunet/bullets"
)

// ErrUnknownLevel is returned by [ParseLevel] for an unrecognised level name.
var ErrUnknownLevel = errors.New("unknown log level")

// Levels lists the accepted level names.
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ParseLevel converts a level name into a [bullets.Level].
func ParseLevel(name string) (bullets.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return bullets.DebugLevel, nil
	case "info":
		return bullets.InfoLevel, nil
	case "warn", "warning":
		return bullets.WarnLevel, nil
	case "error":
		return bullets.ErrorLevel, nil
	default:
		return bullets.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// NewLogger creates a logger that writes to stderr at the given level.
// Unknown level names fall back to info.
func NewLogger(logLevel string) *bullets.Logger {
	return New(os.Stderr, logLevel)
}

// New creates a logger that writes to w at the given level.
func New(w io.Writer, logLevel string) *bullets.Logger {
	level, _ := ParseLevel(logLevel)
	logger := bullets.New(w)
	logger.SetLevel(level)
	return logger
}

// NoLogger creates a logger that discards everything. Useful for tests.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}
