package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashwink/habitd/internal/config"
	"github.com/ashwink/habitd/internal/storage"
	"github.com/ashwink/habitd/internal/tracker"
	"github.com/ashwink/habitd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "habitd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := storage.MigrateUp(repo.DB()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	tr := tracker.New(repo)
	if err := tr.Load(context.Background()); err != nil {
		return err
	}

	m := update.NewModelWithConfig(tr, update.RuntimeConfig{
		QuickAddKind:  cfg.QuickAddKind,
		UIDensity:     cfg.UIDensity,
		StateFilePath: filepath.Join(filepath.Dir(cfg.DBPath), "ui_state.json"),
	})

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
