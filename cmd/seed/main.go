package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gamevault/platform/internal/infra"
	"github.com/gamevault/platform/internal/repository"
	"github.com/gamevault/platform/internal/seed"
)

// Seeds the catalogue fixtures into an empty database. Safe to run more
// than once.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := infra.NewPostgresPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	if err := infra.RunMigrations(cfg.DSN(), logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	inserted, err := seed.Load(ctx, pool, repository.NewCatalogRepository(), logger)
	if err != nil {
		return err
	}
	if inserted > 0 {
		logger.Info("seed complete", "games", inserted)
	}
	return nil
}
