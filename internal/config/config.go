// Package config handles loading the vosim config file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vosim/vosim/internal/paths"
)

// EnvHome is the environment variable overriding the storage root.
const EnvHome = "VOSIM_HOME"

// Config represents the ~/.config/vosim/config.toml file.
type Config struct {
	Storage Storage `toml:"storage"`
	Problem Problem `toml:"problem"`
}

// Storage configures where session state lives.
type Storage struct {
	// Path is the storage root. Empty means the default ~/.vo_sim.
	Path string `toml:"path"`
}

// Problem configures which problem sessions present.
type Problem struct {
	// ID selects the problem recorded on session start.
	ID string `toml:"id"`
}

// Load reads the global config file. A missing file yields an empty config.
func Load() (*Config, error) {
	path, err := paths.GlobalConfigFile()
	if err != nil {
		return nil, err
	}
	return loadFile(path)
}

// BaseDir resolves the effective storage root: the VOSIM_HOME environment
// variable wins, then the config file, then ~/.vo_sim.
func (c *Config) BaseDir() (string, error) {
	if env := os.Getenv(EnvHome); env != "" {
		return env, nil
	}
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	return paths.DefaultBaseDir()
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
