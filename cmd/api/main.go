package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamevault/platform/internal/app"
	"github.com/gamevault/platform/internal/auth"
	"github.com/gamevault/platform/internal/infra"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	// Connect to Postgres
	pool, err := infra.NewPostgresPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()
	logger.Info("connected to postgres")

	// Apply schema migrations
	if err := infra.RunMigrations(cfg.DSN(), logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Parse JWT expiry duration
	customerExpiry, err := time.ParseDuration(cfg.JWTCustomerExpiry)
	if err != nil {
		return fmt.Errorf("parse customer JWT expiry: %w", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, customerExpiry)

	startingBalance, err := cfg.ParsedStartingBalance()
	if err != nil {
		return fmt.Errorf("parse starting balance: %w", err)
	}
	topUpAmount, err := cfg.ParsedTopUpAmount()
	if err != nil {
		return fmt.Errorf("parse top-up amount: %w", err)
	}

	// Router
	r := app.NewRouter(app.RouterDeps{
		Pool:               pool,
		JWTMgr:             jwtMgr,
		Logger:             logger,
		StartingBalance:    startingBalance,
		TopUpAmount:        topUpAmount,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Outbox poller publishes committed events to Kafka. No-op when Kafka
	// is disabled, but polling still keeps the table drained in dev.
	producer := infra.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaEnabled, logger)
	defer producer.Close()

	poller := infra.NewOutboxPoller(pool, producer, logger)
	poller.Start(ctx)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	// Shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
