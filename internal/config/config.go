// Package config loads the Pizzarten configuration from viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete Pizzarten configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// GridColumns is the number of cards per row in the product grid (default: 3)
	GridColumns int `mapstructure:"grid_columns"`
	// ShowImageRefs displays the image reference path on each card (default: false)
	ShowImageRefs bool `mapstructure:"show_image_refs"`
	// ToastDurationMs is how long transient notifications stay visible (default: 3000)
	ToastDurationMs int `mapstructure:"toast_duration_ms"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// PathsConfig controls where Pizzarten stores data
type PathsConfig struct {
	// DataDir is the directory holding the persisted catalog, cart and logs.
	// If empty, defaults to $XDG_DATA_HOME/pizzarten (or ~/.local/share/pizzarten).
	// Supports ~ for home directory expansion.
	DataDir string `mapstructure:"data_dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			GridColumns:     3,
			ShowImageRefs:   false,
			ToastDurationMs: 3000,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
		Paths: PathsConfig{
			DataDir: "", // Empty means use the XDG default
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("tui.grid_columns", defaults.TUI.GridColumns)
	viper.SetDefault("tui.show_image_refs", defaults.TUI.ShowImageRefs)
	viper.SetDefault("tui.toast_duration_ms", defaults.TUI.ToastDurationMs)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	viper.SetDefault("paths.data_dir", defaults.Paths.DataDir)
}

// Load reads the configuration from viper into a Config struct
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ResolveDataDir returns the resolved data directory path.
// If DataDir is empty, it returns the XDG data directory for pizzarten.
// If DataDir starts with ~, it expands to the user's home directory.
func (p *PathsConfig) ResolveDataDir() string {
	path := p.DataDir

	if path == "" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "pizzarten")
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return ".pizzarten"
		}
		return filepath.Join(home, ".local", "share", "pizzarten")
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return path
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pizzarten")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pizzarten"
	}
	return filepath.Join(home, ".config", "pizzarten")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
