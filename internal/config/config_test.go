package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// Helper function to reset viper between tests.
func resetViper() {
	viper.Reset()
}

// TestInitConfig tests the InitConfig function.
func TestInitConfig(t *testing.T) {
	resetViper()

	// Prevent viper from loading any real config files
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}

	provider := NewDefaultConfigProvider()
	cfg := provider.InitConfig()

	assert.Equal(t, DefaultTemplatesDir, cfg.TemplatesDir)
	assert.Equal(t, DefaultStateDBPath, cfg.StateDBPath)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, DefaultUserMode, cfg.UserMode)
	assert.Equal(t, DefaultVerbose, cfg.Verbose)
}

// TestSetAndGetConfig tests the SetConfig and GetConfig functions.
func TestSetAndGetConfig(t *testing.T) {
	resetViper()
	testConfig := &Settings{
		TemplatesDir: "/custom/templates",
		StateDBPath:  "/custom/state.db",
		FetchTimeout: 10 * time.Second,
		UserMode:     true,
		Verbose:      true,
	}

	provider := NewDefaultConfigProvider()
	provider.SetConfig(testConfig)
	assert.Equal(t, testConfig, provider.GetConfig())
}

// TestCustomConfigFile tests the use of a custom config file.
func TestCustomConfigFile(t *testing.T) {
	resetViper()

	tmpfile, err := os.CreateTemp("", "config.*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	configContent := `templatesDir: "/test/templates"
fetchTimeout: 15s
verbose: true
`
	if _, err := tmpfile.WriteString(configContent); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	provider := NewDefaultConfigProvider()
	provider.SetConfigFilePath(tmpfile.Name())
	cfg := provider.InitConfig()

	assert.Equal(t, "/test/templates", cfg.TemplatesDir)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultStateDBPath, cfg.StateDBPath)
}

// TestStaticProvider tests the fixed-settings provider.
func TestStaticProvider(t *testing.T) {
	cfg := &Settings{TemplatesDir: "/static/templates"}
	provider := NewStaticProvider(cfg)

	assert.Same(t, cfg, provider.GetConfig())
	assert.Same(t, cfg, provider.InitConfig())

	replacement := &Settings{TemplatesDir: "/other"}
	provider.SetConfig(replacement)
	assert.Same(t, replacement, provider.GetConfig())
}
