package storage

import (
	"context"
	"encoding/json"
)

// CacheStorage defines interface for persisting cache entries.
// Freshness is decided by the cache layer, storage keeps entries as-is.
type CacheStorage interface {
	// PutCacheEntry stores entry under entry.Key, overwriting
	PutCacheEntry(ctx context.Context, entry *CacheEntry) error

	// GetCacheEntry returns ErrCacheEntryNotFound if key is absent
	GetCacheEntry(ctx context.Context, key string) (*CacheEntry, error)

	// DeleteCacheEntry removes a single entry, missing key is not an error
	DeleteCacheEntry(ctx context.Context, key string) error

	// DeleteCacheEntries removes entries whose key starts with prefix
	// (all entries for an empty prefix) and returns how many were removed
	DeleteCacheEntries(ctx context.Context, prefix string) (int, error)

	// ListCacheEntries returns all entries ordered by key
	ListCacheEntries(ctx context.Context) ([]CacheEntry, error)
}

// CacheEntry сохраненный payload с временем записи
type CacheEntry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix millis
}
