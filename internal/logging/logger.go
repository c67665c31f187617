// Package logging wraps charmbracelet/log with the tool's conventions:
// stderr output, no timestamps, level names from the CLI flag.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // package-level default logger is intentional
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New creates a logger writing to w at the named level. Valid levels are
// "debug", "info", "warn" and "error"; anything else means info.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the shared stderr logger.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, "info")
	})
	return defaultLogger
}

// SetLevel changes the shared logger's level.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
