package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/tair/expense-tracker/internal/masterdata"
	"github.com/tair/expense-tracker/internal/user"
	userhttp "github.com/tair/expense-tracker/internal/user/delivery/http"
	"github.com/tair/expense-tracker/kafka"
	"github.com/tair/expense-tracker/pkg/config"
	"github.com/tair/expense-tracker/pkg/database"
	"github.com/tair/expense-tracker/pkg/logger"
	"github.com/tair/expense-tracker/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("expense-tracker", "info", false)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init("expense-tracker", cfg.LogLevel, cfg.DevMode)

	ctx := context.Background()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("expense-tracker", cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Write side on GORM, read side on database/sql against the same database
	gormDB, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open read-side connection")
	}
	defer sqlDB.Close()

	var publisher userhttp.EventPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	userModule, err := user.NewModule(gormDB, sqlDB, *cfg, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user module")
	}

	masterdataModule, err := masterdata.NewModule(gormDB, userModule.Middleware)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize master data module")
	}

	router := mux.NewRouter()
	userModule.Handler.RegisterRoutes(router)
	userModule.Handler.RegisterHealthCheck(router, sqlDB)
	masterdataModule.Handler.RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}
