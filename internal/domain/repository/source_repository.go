package repository

import (
	"context"

	"github.com/airspace-service/internal/domain"
)

// SourceRepository supplies the raw airspace exchange document and the
// pre-rendered overlay blobs. Implementations fetch over HTTP for the
// service and from local files for the offline exporter; decoding is
// the caller's concern.
type SourceRepository interface {
	// FetchDataset returns the raw YAIXM document.
	FetchDataset(ctx context.Context) ([]byte, error)

	// FetchOverlay returns the overlay text for the given choice. A
	// failed fetch is an error; callers degrade to a placeholder
	// comment rather than aborting an export.
	FetchOverlay(ctx context.Context, overlay domain.Overlay) ([]byte, error)
}
