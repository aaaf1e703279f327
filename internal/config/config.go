// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/editbox/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	DoubleClickTime float64 `toml:"double_click_time"`
	HistoryLimit    int     `toml:"history_limit"`
	SystemClipboard bool    `toml:"system_clipboard"`
	ThemeFile       string  `toml:"theme_file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			DoubleClickTime: DefaultDoubleClickTime,
			HistoryLimit:    DefaultHistoryLimit,
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" if unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// decodeFile overlays the TOML file at path onto cfg. A missing file is not an error.
func decodeFile(path string, cfg *Config) (undecoded []string, err error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.DoubleClickTime <= 0 {
		c.Editor.DoubleClickTime = defaults.Editor.DoubleClickTime
	}
	if c.Editor.HistoryLimit < 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds the configuration: defaults, then the file at path (or the
// default location when path is empty), then flag overrides, then validation.
// The logger is usually not initialized yet, so unknown keys are returned
// for the caller to report instead of being logged here.
func Load(path string, flags *Flags) (cfg *Config, undecoded []string, err error) {
	cfg = NewDefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		undecoded, err = decodeFile(path, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()

	return cfg, undecoded, err
}
