package usecase

import (
	"context"

	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// outputFilename is the download name offered to the host.
const outputFilename = "openair.txt"

// missingOverlay replaces an overlay that could not be fetched.
// Overlays are supplementary, so the export still succeeds.
const missingOverlay = "* Missing overlay data\n"

// ConvertUseCase runs one export: dataset in, OpenAir text out. The
// conversion itself is pure and synchronous; re-invoking with the same
// dataset and different settings is always safe.
type ConvertUseCase struct {
	dataset *DatasetUseCase
	logger  *zap.Logger
}

func NewConvertUseCase(dataset *DatasetUseCase, logger *zap.Logger) *ConvertUseCase {
	return &ConvertUseCase{
		dataset: dataset,
		logger:  logger,
	}
}

// Convert derives the OpenAir document for the given settings. Geometry
// failures fail the whole export rather than drop airspace; only a
// missing overlay degrades to an inline placeholder.
func (uc *ConvertUseCase) Convert(ctx context.Context, settings domain.Settings, clientID string) (*dto.ConvertResult, error) {
	ds, err := uc.dataset.Get(ctx)
	if err != nil {
		return nil, err
	}

	selected := selectVolumes(ds, settings)

	text, err := encodeOpenAir(ds, settings, selected, clientID)
	if err != nil {
		uc.logger.Error("Conversion failed", zap.Error(err))
		return nil, err
	}

	if settings.Overlay != domain.OverlayNone {
		overlay, err := uc.dataset.Overlay(ctx, settings.Overlay)
		if err != nil {
			uc.logger.Warn("Overlay unavailable, appending placeholder",
				zap.String("overlay", string(settings.Overlay)),
				zap.Error(err))
			overlay = missingOverlay
		}
		text += overlay
	}

	uc.logger.Info("Conversion complete",
		zap.Int("volumes", len(selected)),
		zap.String("airac", ds.Release.AiracCycle()),
	)

	return &dto.ConvertResult{
		Text:     text,
		Filename: outputFilename,
	}, nil
}
