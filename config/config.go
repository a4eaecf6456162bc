// ABOUTME: Application configuration at XDG paths with env overrides
// ABOUTME: Carries the data directory and theme preference
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the application name used for XDG paths and env prefixes.
const AppName = "culturadesk"

// Theme mode constants.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Theme is the user's display preference.
type Theme struct {
	Mode           string `json:"mode"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// Config holds local application settings. State itself lives in the
// storage slot; this file only carries preferences and paths.
type Config struct {
	DataDir string `json:"data_dir,omitempty"`
	Theme   Theme  `json:"theme"`
}

// Default returns a config with the stock coral/indigo theme.
func Default() *Config {
	return &Config{
		Theme: Theme{
			Mode:           ThemeSystem,
			PrimaryColor:   "#FF7F50",
			SecondaryColor: "#4B0082",
		},
	}
}

// DefaultPath returns the config file location under XDG data home.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "config.json")
}

// Load reads config from the default path, applying environment
// overrides (CULTURADESK_DATA_DIR, CULTURADESK_THEME_MODE).
// A missing file yields defaults, not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("CULTURADESK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CULTURADESK_THEME_MODE"); v != "" {
		cfg.Theme.Mode = v
	}

	return cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultPath())
}

// SaveTo writes config to an explicit path, creating directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// StateDir returns where the storage slot lives: the configured data
// directory, or the XDG default.
func (c *Config) StateDir() string {
	base := c.DataDir
	if base == "" {
		base = filepath.Join(xdg.DataHome, AppName)
	}
	return filepath.Join(base, "state")
}
