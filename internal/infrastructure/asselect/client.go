package asselect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/airspace-service/internal/config"
	"github.com/airspace-service/internal/domain"
	"github.com/airspace-service/internal/domain/repository"
	"go.uber.org/zap"
)

const datasetFile = "yaixm.json"

var overlayFiles = map[domain.Overlay]string{
	domain.OverlayFL195: "overlay_195.txt",
	domain.OverlayFL105: "overlay_105.txt",
	domain.OverlayAtzDz: "overlay_atzdz.txt",
}

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the HTTP source client for the published YAIXM
// document and overlay files.
func NewClient(cfg *config.SourceConfig, logger *zap.Logger) repository.SourceRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

func (c *client) FetchDataset(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, datasetFile)
}

func (c *client) FetchOverlay(ctx context.Context, overlay domain.Overlay) ([]byte, error) {
	file, ok := overlayFiles[overlay]
	if !ok {
		return nil, fmt.Errorf("unknown overlay %q", overlay)
	}
	return c.fetch(ctx, file)
}

func (c *client) fetch(ctx context.Context, file string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, file)

	c.logger.Debug("Fetching source file", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Source request failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Source returned error",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("source error: status %d for %s", resp.StatusCode, file)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("Source file fetched",
		zap.String("file", file),
		zap.Int("bytes", len(body)))

	return body, nil
}
