package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/domain/repository"
	"go.uber.org/zap"
)

var overlayFiles = map[domain.Overlay]string{
	domain.OverlayFL195: "overlay_195.txt",
	domain.OverlayFL105: "overlay_105.txt",
	domain.OverlayAtzDz: "overlay_atzdz.txt",
}

type sourceRepository struct {
	datasetPath string
	overlayDir  string
	logger      *zap.Logger
}

// NewSourceRepository reads the dataset and overlays from local files,
// for the offline exporter.
func NewSourceRepository(datasetPath, overlayDir string, logger *zap.Logger) repository.SourceRepository {
	return &sourceRepository{
		datasetPath: datasetPath,
		overlayDir:  overlayDir,
		logger:      logger,
	}
}

func (r *sourceRepository) FetchDataset(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	r.logger.Debug("Dataset file read",
		zap.String("path", r.datasetPath),
		zap.Int("bytes", len(data)))

	return data, nil
}

func (r *sourceRepository) FetchOverlay(_ context.Context, overlay domain.Overlay) ([]byte, error) {
	file, ok := overlayFiles[overlay]
	if !ok {
		return nil, fmt.Errorf("unknown overlay %q", overlay)
	}
	if r.overlayDir == "" {
		return nil, fmt.Errorf("no overlay directory configured")
	}

	data, err := os.ReadFile(filepath.Join(r.overlayDir, file))
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay file: %w", err)
	}
	return data, nil
}
