package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gamevault/platform/internal/infra"
)

// Standalone outbox relay. Runs the same poller the API embeds, for
// deployments that want event publishing isolated from request serving.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("outbox consumer failed", "error", err)
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
	logger.Info("outbox-consumer connected to postgres")

	producer := infra.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaEnabled, logger)
	defer producer.Close()

	poller := infra.NewOutboxPoller(pool, producer, logger)
	poller.Start(ctx)

	<-ctx.Done()
	logger.Info("outbox-consumer shutting down")
	return nil
}
