// Package config loads habitd configuration: a TOML file under the
// user config directory, with HABITD_* environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `toml:"db-path"`

	// QuickAddKind is the recurrence kind quick-added items get.
	QuickAddKind string `toml:"quick-add-kind"`

	// UIDensity selects the panel sizing level (1-3).
	UIDensity int `toml:"ui-density"`
}

func Default() Config {
	return Config{
		QuickAddKind: "daily",
		UIDensity:    1,
	}
}

// Load reads the config file if present, applies env overrides, and
// fills in defaults for anything unset. A missing file is not an
// error.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg = applyEnv(cfg)
	return withDefaults(cfg)
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "habitd", "config.toml"), nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("HABITD_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_QUICK_ADD_KIND")); v != "" {
		cfg.QuickAddKind = v
	}
	if v, ok := getEnvInt("HABITD_UI_DENSITY"); ok && v >= 1 && v <= 3 {
		cfg.UIDensity = v
	}
	return cfg
}

func withDefaults(cfg Config) (Config, error) {
	def := Default()
	if cfg.QuickAddKind == "" {
		cfg.QuickAddKind = def.QuickAddKind
	}
	if cfg.UIDensity < 1 || cfg.UIDensity > 3 {
		cfg.UIDensity = def.UIDensity
	}
	if cfg.DBPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("get home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(homeDir, ".local", "share", "habitd", "habitd.db")
	}
	return cfg, nil
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
