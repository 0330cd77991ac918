package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tair/expense-tracker/kafka"
	"github.com/tair/expense-tracker/pkg/config"
	"github.com/tair/expense-tracker/pkg/logger"
)

// Audit consumer: tails the user event topic and logs every lifecycle
// change for compliance review.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("expense-audit", "info", false)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init("expense-audit", cfg.LogLevel, cfg.DevMode)

	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, "expense-audit", []string{kafka.TopicUserEvents})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	logEvent := func(ctx context.Context, event kafka.UserEvent) error {
		logger.Info(ctx).
			Str("event_id", event.EventID).
			Str("event_type", event.EventType).
			Str("user_id", event.UserID).
			Str("email", event.Email).
			Str("role", event.Role).
			Str("status", event.Status).
			Time("timestamp", event.Timestamp).
			Msg("User lifecycle event")
		return nil
	}

	consumer.RegisterHandler(kafka.EventTypeUserRegistered, logEvent)
	consumer.RegisterHandler(kafka.EventTypeUserRoleChanged, logEvent)
	consumer.RegisterHandler(kafka.EventTypeUserStatusChanged, logEvent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	logger.Logger.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Audit consumer starting")
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	// Start returns once the consume loops are running; block until a
	// shutdown signal cancels the context.
	<-ctx.Done()
	logger.Logger.Info().Msg("Audit consumer shutting down")
}
