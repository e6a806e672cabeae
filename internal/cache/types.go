package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/avvvet/supportchain/internal/models"
)

// Store caches chain outputs by query. The chain is deterministic, so a
// cached entry is interchangeable with a fresh run.
type Store interface {
	// Get returns the cached outputs and whether the key was present
	Get(ctx context.Context, key string) (*models.ChainOutputs, bool, error)

	// Set stores outputs under key
	Set(ctx context.Context, key string, outputs *models.ChainOutputs) error

	Close() error
}

// Key derives a stable cache key from the raw query.
func Key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}

// NopStore never hits. It is used when caching is disabled.
type NopStore struct{}

func (NopStore) Get(context.Context, string) (*models.ChainOutputs, bool, error) {
	return nil, false, nil
}

func (NopStore) Set(context.Context, string, *models.ChainOutputs) error { return nil }

func (NopStore) Close() error { return nil }
