// Package log provides logging functionality for tplforge.
package log

import (
	"log/slog"
	"os"
)

// Logger defines the interface for logging operations.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// slogAdapter wraps slog.Logger to implement the Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *slogAdapter) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *slogAdapter) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *slogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// NewLogger creates a new logger with the specified verbosity.
// Verbose loggers emit debug output; otherwise only warnings and errors
// are printed so generated artifacts stay the primary program output.
func NewLogger(verbose bool) Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	return &slogAdapter{logger: slog.New(slog.NewTextHandler(os.Stderr, opts))}
}

var defaultLogger Logger

// Init initializes the default logger with the specified verbosity.
// Call once at application startup.
func Init(verbose bool) {
	defaultLogger = NewLogger(verbose)
}

// GetLogger returns the default logger instance, initializing a quiet
// logger when Init has not been called.
func GetLogger() Logger {
	if defaultLogger == nil {
		defaultLogger = NewLogger(false)
	}
	return defaultLogger
}
