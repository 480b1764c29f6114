package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starboardhq/starboard/internal/icon"
	"github.com/starboardhq/starboard/internal/storage"
	"github.com/starboardhq/starboard/internal/store"
	"github.com/starboardhq/starboard/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starboard failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	dbPath, err := resolveDBPath(cfg.DBPath)
	if err != nil {
		return err
	}
	repo, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	data, err := storage.LoadSnapshot(ctx, repo)
	cancel()
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	var resolver *icon.Resolver
	if cfg.IconsEnabled {
		client := icon.NewClient(cfg.GeminiAPIKey)
		resolver = icon.NewResolver(client, cfg.IconBuffer, time.Duration(cfg.IconTimeoutSeconds)*time.Second)
		resolver.Start()
		defer resolver.Stop()
	}

	m := update.NewModelWithConfig(data, store.New(store.SystemClock()), repo, resolver, cfg)
	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func resolveDBPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".starboard")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(dir, "starboard.db"), nil
}
