package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingReturnsZero(t *testing.T) {
	cfg, err := loadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("loadFile() error = %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("loadFile() = %+v, want zero config", cfg)
	}
}

func TestLoadFileParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "db-path = \"/tmp/habits.db\"\nquick-add-kind = \"weekdays\"\nui-density = 2\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFile(path)
	if err != nil {
		t.Fatalf("loadFile() error = %v", err)
	}
	if cfg.DBPath != "/tmp/habits.db" {
		t.Fatalf("DBPath = %q, want /tmp/habits.db", cfg.DBPath)
	}
	if cfg.QuickAddKind != "weekdays" {
		t.Fatalf("QuickAddKind = %q, want weekdays", cfg.QuickAddKind)
	}
	if cfg.UIDensity != 2 {
		t.Fatalf("UIDensity = %d, want 2", cfg.UIDensity)
	}
}

func TestLoadFileRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db-path = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadFile(path); err == nil {
		t.Fatal("loadFile() accepted malformed TOML")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("HABITD_DB_PATH", "/override/habits.db")
	t.Setenv("HABITD_QUICK_ADD_KIND", "weekends")
	t.Setenv("HABITD_UI_DENSITY", "3")

	cfg := applyEnv(Config{DBPath: "/file/habits.db", QuickAddKind: "daily", UIDensity: 1})
	if cfg.DBPath != "/override/habits.db" {
		t.Fatalf("DBPath = %q, want env override", cfg.DBPath)
	}
	if cfg.QuickAddKind != "weekends" {
		t.Fatalf("QuickAddKind = %q, want weekends", cfg.QuickAddKind)
	}
	if cfg.UIDensity != 3 {
		t.Fatalf("UIDensity = %d, want 3", cfg.UIDensity)
	}
}

func TestApplyEnvIgnoresInvalidDensity(t *testing.T) {
	t.Setenv("HABITD_UI_DENSITY", "9")
	cfg := applyEnv(Config{UIDensity: 2})
	if cfg.UIDensity != 2 {
		t.Fatalf("UIDensity = %d, want 2", cfg.UIDensity)
	}
}

func TestWithDefaultsFillsUnset(t *testing.T) {
	cfg, err := withDefaults(Config{})
	if err != nil {
		t.Fatalf("withDefaults() error = %v", err)
	}
	if cfg.QuickAddKind != "daily" {
		t.Fatalf("QuickAddKind = %q, want daily", cfg.QuickAddKind)
	}
	if cfg.UIDensity != 1 {
		t.Fatalf("UIDensity = %d, want 1", cfg.UIDensity)
	}
	if cfg.DBPath == "" {
		t.Fatal("DBPath not defaulted")
	}
}
