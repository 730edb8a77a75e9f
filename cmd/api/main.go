package main

// @title Airspace Service API
// @version 1.0.0
// @description Converts the published YAIXM UK airspace dataset into OpenAir text files for flight-planning and moving-map tools.
// @description
// @description Endpoints:
// @description - Selectable extras index (RAT, LOA, wave boxes, gliding sites)
// @description - Dataset release metadata (AIRAC cycle, note, commit)
// @description - Conversion to a downloadable OpenAir document

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/airspace-service/docs"
	"github.com/airspace-service/internal/config"
	httpDelivery "github.com/airspace-service/internal/delivery/http"
	"github.com/airspace-service/internal/delivery/http/handler"
	"github.com/airspace-service/internal/infrastructure/asselect"
	"github.com/airspace-service/internal/pkg/logger"
	"github.com/airspace-service/internal/repository/cache"
	"github.com/airspace-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Airspace Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("source_base_url", cfg.Source.BaseURL),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize repositories
	sourceRepo := asselect.NewClient(&cfg.Source, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	datasetUC := usecase.NewDatasetUseCase(
		sourceRepo,
		cacheRepo,
		log,
		cfg.Cache.DatasetTTL,
		cfg.Cache.OverlayTTL,
	)
	airspaceUC := usecase.NewAirspaceUseCase(datasetUC, log)
	convertUC := usecase.NewConvertUseCase(datasetUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers and server
	airspaceHandler := handler.NewAirspaceHandler(airspaceUC, log)
	convertHandler := handler.NewConvertHandler(convertUC, log)

	server := httpDelivery.NewServer(cfg, log, airspaceHandler, convertHandler)

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
