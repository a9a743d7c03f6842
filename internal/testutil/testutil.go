// Package testutil provides common test helpers.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/tplforge/tplforge/internal/config"
	"github.com/tplforge/tplforge/internal/log"
)

// testLogger routes log output through t.Logf so it is captured per test.
type testLogger struct {
	t testing.TB
}

func (l *testLogger) log(level, msg string, args []any) {
	l.t.Helper()
	l.t.Logf("%s: %s %v", level, msg, args)
}

func (l *testLogger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args) }
func (l *testLogger) Info(msg string, args ...any)  { l.log("INFO", msg, args) }
func (l *testLogger) Warn(msg string, args ...any)  { l.log("WARN", msg, args) }
func (l *testLogger) Error(msg string, args ...any) { l.log("ERROR", msg, args) }

// NewTestLogger creates a logger that writes to t.Logf.
func NewTestLogger(t testing.TB) log.Logger {
	return &testLogger{t: t}
}

// ConfigOption customizes test config settings.
type ConfigOption func(*config.Settings)

// WithTemplatesDir sets a custom templates directory.
func WithTemplatesDir(dir string) ConfigOption {
	return func(cfg *config.Settings) {
		cfg.TemplatesDir = dir
	}
}

// NewTestConfig creates a config provider rooted in a per-test temporary
// directory.
func NewTestConfig(t testing.TB, opts ...ConfigOption) config.Provider {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := &config.Settings{
		TemplatesDir: filepath.Join(tmpDir, "templates"),
		StateDBPath:  filepath.Join(tmpDir, "state.db"),
		FetchTimeout: config.DefaultFetchTimeout,
		Verbose:      true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return config.NewStaticProvider(cfg)
}
