// Package paths resolves the default on-disk locations used by vosim.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBaseDir returns the default storage root, ~/.vo_sim.
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".vo_sim"), nil
}

// GlobalConfigFile returns the path of the global config file,
// ~/.config/vosim/config.toml.
func GlobalConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "vosim", "config.toml"), nil
}
