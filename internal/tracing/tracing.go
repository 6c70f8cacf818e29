// Package tracing provides an optional structured logging wrapper around
// charmbracelet/log. The core never logs on its own — every entry point
// that can trace (pkg/parser, pkg/incremental, pkg/analysis) accepts a
// *log.Logger via its Options and treats nil as "tracing disabled". This
// lets an embedding editor or CLI wire up visibility into parse/reparse/
// lint decisions without the core ever performing I/O itself.
package tracing

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals // package-level default mirrors the teacher's logging package
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New(io.Discard, "info")
	})
	return defaultLogger
}

// New creates a logger writing to w at the given level. Valid levels are
// "debug", "info", "warn", "error"; anything else is treated as "info".
// Timestamps are only reported when w is a TTY — a library embedded in an
// editor wants compact trace lines, not a full log format, when piping to
// a file or in-memory buffer (the common case for tests).
func New(w io.Writer, level string) *log.Logger {
	reportTimestamp := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		reportTimestamp = isatty.IsTerminal(f.Fd())
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    false,
	})
	setLevel(logger, level)

	return logger
}

// Default returns the package-level default logger, which discards output
// until SetDefault is called. Components use this when no explicit logger
// was supplied via Options, so a debug call is always safe to make.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLoggerOnce.Do(func() {})
	defaultLogger = logger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	setLevel(getDefaultLogger(), level)
}

func setLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}
