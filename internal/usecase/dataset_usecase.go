package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/domain/repository"
	"github.com/airspace-service/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	datasetCacheKey    = "yaixm:dataset"
	overlayCacheKeyFmt = "yaixm:overlay:%s"
)

// DatasetUseCase supplies the decoded dataset and overlay blobs, with a
// byte cache in front of the remote source. The cache is optional (the
// offline exporter runs without one) and best-effort: cache failures
// degrade to a direct fetch.
type DatasetUseCase struct {
	source     repository.SourceRepository
	cache      repository.CacheRepository
	logger     *zap.Logger
	datasetTTL time.Duration
	overlayTTL time.Duration
}

func NewDatasetUseCase(
	source repository.SourceRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	datasetTTL time.Duration,
	overlayTTL time.Duration,
) *DatasetUseCase {
	return &DatasetUseCase{
		source:     source,
		cache:      cache,
		logger:     logger,
		datasetTTL: datasetTTL,
		overlayTTL: overlayTTL,
	}
}

// Get returns the decoded dataset. The document is immutable; callers
// must treat it as read-only so repeated conversions can share it.
func (uc *DatasetUseCase) Get(ctx context.Context) (*domain.Dataset, error) {
	raw, err := uc.cachedFetch(ctx, datasetCacheKey, uc.datasetTTL, uc.source.FetchDataset)
	if err != nil {
		uc.logger.Error("Failed to fetch dataset", zap.Error(err))
		return nil, errors.ErrDatasetUnavailable
	}

	ds, err := domain.DecodeDataset(raw)
	if err != nil {
		uc.logger.Error("Failed to decode dataset", zap.Error(err))
		return nil, err
	}
	return ds, nil
}

// Overlay returns the overlay text for the given choice.
func (uc *DatasetUseCase) Overlay(ctx context.Context, overlay domain.Overlay) (string, error) {
	key := fmt.Sprintf(overlayCacheKeyFmt, overlay)
	raw, err := uc.cachedFetch(ctx, key, uc.overlayTTL, func(ctx context.Context) ([]byte, error) {
		return uc.source.FetchOverlay(ctx, overlay)
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (uc *DatasetUseCase) cachedFetch(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fetch func(context.Context) ([]byte, error),
) ([]byte, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		if err != nil {
			uc.logger.Warn("Cache read failed, fetching from source",
				zap.String("key", key), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	raw, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, raw, ttl); err != nil {
			uc.logger.Warn("Cache write failed",
				zap.String("key", key), zap.Error(err))
		}
	}
	return raw, nil
}
