package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"smarthost/internal/app/outbox"
	"smarthost/internal/bootstrap"
	"smarthost/internal/infra/broker/kafka"
	"smarthost/internal/infra/config"
	ginserver "smarthost/internal/infra/http/gin"
	"smarthost/internal/infra/obs"
	"smarthost/internal/infra/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
		cfg = config.Default()
		cfg.Env = env
		cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

// run owns every closable resource so each is released before main exits.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var producer outbox.Producer = kafka.LogProducer{Logger: logger}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			return fmt.Errorf("kafka producer init (brokers %v): %w", cfg.KafkaBrokers, err)
		}
		defer func() {
			if closeErr := kp.Close(); closeErr != nil {
				logger.Error("kafka producer close failed", "error", closeErr)
			}
		}()
		producer = kp
	}

	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("storage init (backend %s): %w", cfg.StorageBackend, err)
	}
	defer func() {
		if closeErr := repos.Close(context.Background()); closeErr != nil {
			logger.Error("storage close failed", "error", closeErr)
		}
	}()

	app := bootstrap.BuildApplication(repos, bootstrap.Options{
		Producer:    producer,
		TopicPrefix: cfg.KafkaTopicPrefix,
	}, logger)
	go func() {
		if err := app.Outbox.Run(ctx, cfg.OutboxRetry); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("outbox retry loop stopped", "error", err)
		}
	}()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: repos.Ping,
	}, app.Handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "backend", repos.Backend)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
