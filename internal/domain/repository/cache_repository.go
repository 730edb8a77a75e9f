package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-blob cache with TTLs, used in front of the
// remote dataset and overlay sources.
type CacheRepository interface {
	// Get returns the cached value, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error
}
