package config

import (
	"log/slog"
	"strings"

	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error
	Level string `toml:"level"`

	// Format is text or json
	Format string `toml:"format"`

	// File receives log lines; empty means standard error
	File string `toml:"file"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: "text",
	}
}

// SlogLevel returns Level as a slog.Level.
func (c *LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, errors.Wrapf(errors.ErrInvalidConfig, "log.level %q", c.Level)
	}
	return level, nil
}

// Validate checks the level and format names.
func (c *LogConfig) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidConfig, "log.format %q: must be text or json", c.Format)
}
