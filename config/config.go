package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the main configuration structure
type Config struct {
	// InPort and OutPort name the controller's ports. Empty means
	// auto-detect by the controller's discovery names.
	InPort  string `json:"inPort,omitempty"`
	OutPort string `json:"outPort,omitempty"`

	// Invert swaps the factory template bank end to end.
	Invert bool `json:"invert"`
	Debug  bool `json:"debug,omitempty"`

	// Tracks is the size of the simulated project.
	Tracks int `json:"tracks,omitempty"`

	// Palette is an optional GPL file for the terminal colours.
	Palette string `json:"palette,omitempty"`
}

// DefaultTracks is the project size used when none is configured.
const DefaultTracks = 16

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Tracks: DefaultTracks,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-launchcontrol"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it does not
// exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Tracks <= 0 {
		cfg.Tracks = DefaultTracks
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
