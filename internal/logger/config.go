// Package logger provides configurable logging for the engine and its
// consumers.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log ("debug", "info",
	// "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Empty or "-"
	// means stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledTags only logs messages carrying these tags (if
	// non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags drops messages carrying these tags. Overrides
	// EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// --- Internal processed fields ---
	level           slog.Level
	enabledTagsSet  map[string]struct{}
	disabledTagsSet map[string]struct{}
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// process parses string levels and tag lists into efficient internal
// forms.
func (c *Config) process() {
	c.level = slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		c.level = slog.LevelDebug
	case "info":
		c.level = slog.LevelInfo
	case "warn", "warning":
		c.level = slog.LevelWarn
	case "error", "err":
		c.level = slog.LevelError
	}

	c.enabledTagsSet = sliceToSet(c.EnabledTags)
	c.disabledTagsSet = sliceToSet(c.DisabledTags)
}

// sliceToSet lowercases entries for case-insensitive matching and
// returns nil for an empty set, which simplifies the checks later.
func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
