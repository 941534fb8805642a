// Package config provides configuration for hotseat-chess.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/lgbarn/hotseat-chess/internal/errors"
)

// configFile is the path of the config file relative to the XDG config dirs.
var configFile = filepath.Join("hotseat-chess", "config.toml")

// Config holds all program configuration.
type Config struct {
	Render *RenderConfig `toml:"render"`
	Log    *LogConfig    `toml:"log"`
	Game   *GameConfig   `toml:"game"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Render: NewRenderConfig(),
		Log:    NewLogConfig(),
		Game:   NewGameConfig(),
	}
}

// Validate checks every section and returns the first problem found,
// wrapping errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// Load reads the TOML file at path over the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data, path)
}

// Parse decodes TOML data over the defaults. name labels error messages.
func Parse(data []byte, name string) (*Config, error) {
	cfg := NewConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s: %v", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s: unknown keys %s", name, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return cfg, nil
}

// Find loads the config file from the XDG config directories. When no
// file exists it returns the defaults and an empty path.
func Find() (*Config, string, error) {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return NewConfig(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Write encodes cfg as TOML.
func (c *Config) Write(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return errors.Wrap(err, "encode config")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes cfg to the user's XDG config directory, creating it if
// needed, and returns the file path.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(configFile)
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "create config")
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
