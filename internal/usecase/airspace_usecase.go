package usecase

import (
	"context"

	"github.com/airspace-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AirspaceUseCase serves the read-only views a selection UI needs: the
// selectable-extras index and the release metadata.
type AirspaceUseCase struct {
	dataset *DatasetUseCase
	logger  *zap.Logger
}

func NewAirspaceUseCase(dataset *DatasetUseCase, logger *zap.Logger) *AirspaceUseCase {
	return &AirspaceUseCase{
		dataset: dataset,
		logger:  logger,
	}
}

func (uc *AirspaceUseCase) GetIndex(ctx context.Context) (*dto.IndexResponse, error) {
	ds, err := uc.dataset.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.IndexResponse{
		GlidingSites: ds.GlidingSites(),
		Rat:          ds.RatNames(),
		Loa:          ds.LoaNames(),
		Wave:         ds.WaveNames(),
	}, nil
}

func (uc *AirspaceUseCase) GetRelease(ctx context.Context) (*dto.ReleaseResponse, error) {
	ds, err := uc.dataset.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ReleaseResponse{
		AiracDate:     ds.Release.AiracCycle(),
		Note:          ds.Release.Note,
		SchemaVersion: ds.Release.SchemaVersion,
		Commit:        ds.Release.Commit,
	}, nil
}
