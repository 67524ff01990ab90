package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalName is the file picked up from the working directory.
const LocalName = "telepathy.toml"

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("no config file")

// DefaultPath is the per-user config file, also where `config init` writes:
// $XDG_CONFIG_HOME/telepathy/config.toml, falling back to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return LocalName
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "telepathy", "config.toml")
}

// Discover picks the config file: $TELEPATHY_CONFIG when set, else
// telepathy.toml in the working directory, else DefaultPath.
func Discover() (string, error) {
	if p := os.Getenv("TELEPATHY_CONFIG"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("TELEPATHY_CONFIG: %w", err)
		}
		return p, nil
	}

	user := DefaultPath()
	for _, p := range []string{LocalName, user} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: neither ./%s nor %s exists, run 'telepathy config init'", ErrNotFound, LocalName, user)
}
