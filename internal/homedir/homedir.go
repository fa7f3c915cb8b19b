package homedir

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "datestamp"

// Get returns the directory holding the configuration file, honouring
// XDG_CONFIG_HOME when set.
func Get() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}

	home, err := os.UserHomeDir()

	if err != nil {
		return "", fmt.Errorf("homedir: could not resolve user home: %w", err)
	}

	return filepath.Join(home, ".config", appName), nil
}
