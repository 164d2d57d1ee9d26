package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the caid data directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/caid; on macOS
// to ~/Library/Application Support/caid; and on Windows to %AppData%/caid.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "caid"), nil
}

// DefaultDBPath returns <Dir>/caid.db.
func DefaultDBPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "caid.db"), nil
}
