package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a config string onto a pterm log level.
func ParseLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "", "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "none", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelWarn, fmt.Errorf("unknown log level '%s'", level)
	}
}

// New builds a logger writing to w.
func New(level string, w io.Writer) (*pterm.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return pterm.DefaultLogger.
		WithLevel(lvl).
		WithWriter(w).
		WithTime(true), nil
}

// Open builds a logger for the configured file, or stderr when file is empty.
// The returned close func is never nil.
func Open(level, file string) (*pterm.Logger, func() error, error) {
	if file == "" {
		logger, err := New(level, os.Stderr)
		return logger, func() error { return nil }, err
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return nil, nil, fmt.Errorf("can not create log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("can not open log file %s: %w", file, err)
	}

	logger, err := New(level, f)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger.WithFormatter(pterm.LogFormatterJSON), f.Close, nil
}

// Discard is a logger that drops everything.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}
