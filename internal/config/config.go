// Package config provides configuration management for tplforge.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers.
type Provider interface {
	// GetConfig returns the current application configuration.
	GetConfig() *Settings
	// SetConfig sets the application configuration.
	SetConfig(c *Settings)
	// InitConfig initializes the application configuration.
	InitConfig() *Settings
	// SetConfigFilePath sets the configuration file path.
	SetConfigFilePath(p string)
}

// defaultConfigProvider implements the Provider interface.
type defaultConfigProvider struct {
	cfg *Settings
}

// NewDefaultConfigProvider creates a new default config provider.
func NewDefaultConfigProvider() Provider {
	return &defaultConfigProvider{}
}

var defaultProvider = NewDefaultConfigProvider()

// staticProvider serves a fixed Settings value. Useful for wiring services
// to already-initialized configuration and in tests.
type staticProvider struct {
	cfg *Settings
}

// NewStaticProvider creates a Provider that always serves c.
func NewStaticProvider(c *Settings) Provider {
	return &staticProvider{cfg: c}
}

func (p *staticProvider) GetConfig() *Settings     { return p.cfg }
func (p *staticProvider) SetConfig(c *Settings)    { p.cfg = c }
func (p *staticProvider) InitConfig() *Settings    { return p.cfg }
func (p *staticProvider) SetConfigFilePath(string) {}

// Default configuration values for tplforge. System-wide paths are used
// unless user mode is enabled, in which case the per-user equivalents apply.
const (
	DefaultTemplatesDir     = "/var/lib/tplforge/templates"
	DefaultStateDBPath      = "/var/lib/tplforge/tplforge.db"
	DefaultUserTemplatesDir = "$HOME/.local/share/tplforge/templates"
	DefaultUserStateDBPath  = "$HOME/.local/share/tplforge/tplforge.db"
	DefaultFetchTimeout     = 30 * time.Second
	DefaultUserMode         = false
	DefaultVerbose          = false
)

// Settings represents the configuration for tplforge: where generated
// templates are written, where the conversion history database lives,
// how long remote document fetches may take, and output verbosity.
type Settings struct {
	TemplatesDir string        `yaml:"templatesDir"`
	StateDBPath  string        `yaml:"stateDBPath"`
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
	UserMode     bool          `yaml:"userMode"`
	Verbose      bool          `yaml:"verbose"`
}

func (p *defaultConfigProvider) SetConfig(c *Settings) {
	p.cfg = c
}

func (p *defaultConfigProvider) GetConfig() *Settings {
	return p.cfg
}

func (p *defaultConfigProvider) SetConfigFilePath(path string) {
	viper.SetConfigFile(path)
}

func (p *defaultConfigProvider) InitConfig() *Settings {
	p.cfg = initConfigInternal()
	return p.cfg
}

// SetConfig sets the application configuration on the default provider.
func SetConfig(c *Settings) {
	defaultProvider.SetConfig(c)
}

// GetConfig returns the current application configuration.
func GetConfig() *Settings {
	return defaultProvider.GetConfig()
}

// SetConfigFilePath sets the configuration file path.
func SetConfigFilePath(p string) {
	defaultProvider.SetConfigFilePath(p)
}

// InitConfig initializes the application configuration.
func InitConfig() *Settings {
	return defaultProvider.InitConfig()
}

func initConfigInternal() *Settings {
	cfg := &Settings{
		TemplatesDir: DefaultTemplatesDir,
		StateDBPath:  DefaultStateDBPath,
		FetchTimeout: DefaultFetchTimeout,
		UserMode:     DefaultUserMode,
		Verbose:      DefaultVerbose,
	}

	viper.SetDefault("templatesDir", DefaultTemplatesDir)
	viper.SetDefault("stateDBPath", DefaultStateDBPath)
	viper.SetDefault("fetchTimeout", DefaultFetchTimeout)
	viper.SetDefault("userMode", DefaultUserMode)
	viper.SetDefault("verbose", DefaultVerbose)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(os.ExpandEnv("$HOME/.config/tplforge"))
	viper.AddConfigPath("/etc/tplforge")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		panic(err)
	}

	return cfg
}
