// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/strandtext/strand/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Logger config under the [logger] table
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	HistoryDepth    int  `toml:"history_depth"`
	SystemClipboard bool `toml:"system_clipboard"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			HistoryDepth:    DefaultHistoryDepth,
			SystemClipboard: DefaultSystemClipboard,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file. A
// missing file is not an error; defaults apply.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("config file '%s': unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// merge copies the settings the file actually set over the defaults.
func (c *Config) merge(fileCfg *Config) {
	if fileCfg.Logger.LogLevel != "" {
		c.Logger = fileCfg.Logger
	}
	if fileCfg.Editor.TabWidth > 0 {
		c.Editor.TabWidth = fileCfg.Editor.TabWidth
	}
	if fileCfg.Editor.HistoryDepth > 0 {
		c.Editor.HistoryDepth = fileCfg.Editor.HistoryDepth
	}
	c.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.HistoryDepth <= 0 {
		c.Editor.HistoryDepth = defaults.Editor.HistoryDepth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load orchestrates loading defaults, the config file and flag
// overrides, then validates the merged result.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
		}
	}

	if effectivePath != "" {
		fileCfg, err := loadFromFile(effectivePath)
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, nil
}
