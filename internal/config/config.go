// Package config loads librarylink configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Shell   ShellConfig
	Monitor MonitorConfig
	Logging LogConfig
}

// ShellConfig holds host shell configuration.
type ShellConfig struct {
	PowerShell string `envconfig:"LIBRARYLINK_POWERSHELL" default:"powershell"`
}

// MonitorConfig holds process monitoring configuration.
type MonitorConfig struct {
	// WaitPoll is the termination poll interval used on platforms without
	// a native blocking process wait.
	WaitPoll time.Duration `envconfig:"LIBRARYLINK_WAIT_POLL" default:"500ms"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LIBRARYLINK_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LIBRARYLINK_LOG_DEV" default:"false"`
}

// Load loads configuration from LIBRARYLINK_* environment variables. The
// prefix lives in the field tags: envconfig resolves a nested field either
// by its path-derived key or by the bare tag, so the tags must carry the
// full documented names.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			PowerShell: "powershell",
		},
		Monitor: MonitorConfig{
			WaitPoll: 500 * time.Millisecond,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
