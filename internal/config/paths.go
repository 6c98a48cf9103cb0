package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the zrpcd configuration directory path.
// By default, this is ~/.config/zrpcd/. If the XDG_CONFIG_HOME
// environment variable is set, it uses $XDG_CONFIG_HOME/zrpcd/ instead.
// The returned path always has a trailing slash.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return ExpandHome(base) + "/zrpcd/"
}

// DataDir returns the directory holding runtime files such as the vty
// socket: $XDG_DATA_HOME/zrpcd/ or ~/.local/share/zrpcd/.
func DataDir() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = "~/.local/share"
	}
	return ExpandHome(base) + "/zrpcd/"
}

// EnsureDir creates the zrpcd configuration directory if it
// doesn't exist. It uses 0700 permissions (user-only access).
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// DefaultPath returns the full path to the configuration file.
// This is Dir() + "config.yaml".
func DefaultPath() string {
	return Dir() + "config.yaml"
}

// ExpandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
