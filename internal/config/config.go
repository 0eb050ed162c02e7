// Package config resolves where the store lives and the presentation
// defaults, layering flag > environment > config file > XDG default.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDBPath = "HABITCTL_DB_PATH"
	EnvToday  = "HABITCTL_TODAY"
)

// File is the optional YAML config at ~/.config/habitctl/config.yaml.
type File struct {
	DBPath string `yaml:"db_path"`
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"`
}

// LoadEnv pulls a .env from the working directory into the environment.
// Missing files are fine.
func LoadEnv() {
	_ = godotenv.Load()
}

// DefaultConfigPath returns the config file location.
func DefaultConfigPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "habitctl", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "habitctl", "config.yaml")
}

// LoadFile reads a config file. A missing file yields a zero File.
func LoadFile(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, err
	}
	return f, nil
}

// ResolveDBPath picks the store path: explicit flag, then HABITCTL_DB_PATH,
// then the config file, then $XDG_DATA_HOME/habitctl/db.json with a
// ~/.local/share fallback.
func ResolveDBPath(flagValue string, cfg File) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		return v
	}
	if v := strings.TrimSpace(cfg.DBPath); v != "" {
		return v
	}
	base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME"))
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "habitctl", "db.json")
}

// ResolveToday picks the reference date string: flag, then HABITCTL_TODAY,
// then fallback (the system date). Validation happens at the caller.
func ResolveToday(flagValue, fallback string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvToday)); v != "" {
		return v
	}
	return fallback
}

// ColorEnabled honors --no-color, NO_COLOR and the config file, in that
// order.
func ColorEnabled(noColorFlag bool, cfg File) bool {
	if noColorFlag {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if cfg.Color != nil {
		return *cfg.Color
	}
	return true
}
