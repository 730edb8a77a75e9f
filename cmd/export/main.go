package main

import (
	"context"
	"fmt"
	"os"

	"github.com/airspace-service/internal/config"
	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/pkg/logger"
	"github.com/airspace-service/internal/repository/file"
	"github.com/airspace-service/internal/usecase"
	"go.uber.org/zap"
)

// Offline exporter: converts a local yaixm.json into an OpenAir file
// without the HTTP service or Redis.
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

	log.Info("Starting airspace export",
		zap.String("dataset", cfg.Export.DatasetPath),
		zap.String("output", cfg.Export.OutputPath),
	)

	// 3. Load settings, defaults when no file is configured
	settings := domain.DefaultSettings()
	if cfg.Export.SettingsPath != "" {
		data, err := os.ReadFile(cfg.Export.SettingsPath)
		if err != nil {
			log.Fatal("Failed to read settings file", zap.Error(err))
		}
		settings, err = domain.DecodeSettings(data)
		if err != nil {
			log.Fatal("Failed to decode settings file", zap.Error(err))
		}
	}

	// 4. Wire the file-based source; no cache for a one-shot run
	sourceRepo := file.NewSourceRepository(cfg.Export.DatasetPath, cfg.Export.OverlayDir, log)
	datasetUC := usecase.NewDatasetUseCase(sourceRepo, nil, log, 0, 0)
	convertUC := usecase.NewConvertUseCase(datasetUC, log)

	// 5. Convert and write
	result, err := convertUC.Convert(context.Background(), settings, "offline-export")
	if err != nil {
		log.Fatal("Conversion failed", zap.Error(err))
	}

	if err := os.WriteFile(cfg.Export.OutputPath, []byte(result.Text), 0o644); err != nil {
		log.Fatal("Failed to write output file", zap.Error(err))
	}

	log.Info("Export complete",
		zap.String("output", cfg.Export.OutputPath),
		zap.Int("bytes", len(result.Text)),
	)
}
