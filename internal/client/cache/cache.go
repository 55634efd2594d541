// Package cache реализует локальный кеш ответов с TTL поверх storage.CacheStorage.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/bcp-audit/internal/client/storage"
)

// DefaultTTL время жизни записи
const DefaultTTL = 5 * time.Minute

// Cache хранит JSON payload с временем записи.
// Запись свежая, пока now - timestamp < ttl.
type Cache struct {
	store  storage.CacheStorage
	logger *slog.Logger
	now    func() time.Time
	ttl    time.Duration
}

// Option настраивает Cache
type Option func(*Cache)

// WithTTL задает время жизни записей
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock подменяет источник времени (тесты)
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New создает кеш поверх хранилища
func New(store storage.CacheStorage, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		ttl:    DefaultTTL,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL возвращает время жизни записей
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get декодирует свежую запись в dst и возвращает true.
// Отсутствующая, устаревшая и нечитаемая записи одинаково дают false.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	entry, err := c.store.GetCacheEntry(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheEntryNotFound) {
			c.logger.DebugContext(ctx, "cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}

	if !c.fresh(entry) {
		return false
	}

	if err := json.Unmarshal(entry.Data, dst); err != nil {
		c.logger.DebugContext(ctx, "cache entry is unreadable", slog.String("key", key), slog.Any("error", err))
		return false
	}

	return true
}

// Set сохраняет data с текущим временем, перезаписывая прежнюю запись
func (c *Cache) Set(ctx context.Context, key string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal cache payload %q: %w", key, err)
	}

	entry := &storage.CacheEntry{
		Key:       key,
		Data:      payload,
		Timestamp: c.now().UnixMilli(),
	}
	if err := c.store.PutCacheEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to write cache entry %q: %w", key, err)
	}
	return nil
}

// Clear удаляет записи с ключом, начинающимся с prefix; пустой prefix удаляет все
func (c *Cache) Clear(ctx context.Context, prefix string) (int, error) {
	n, err := c.store.DeleteCacheEntries(ctx, prefix)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	return n, nil
}

// Purge удаляет устаревшие записи и возвращает их количество
func (c *Cache) Purge(ctx context.Context) (int, error) {
	entries, err := c.store.ListCacheEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list cache entries: %w", err)
	}

	purged := 0
	for i := range entries {
		if c.fresh(&entries[i]) {
			continue
		}
		if err := c.store.DeleteCacheEntry(ctx, entries[i].Key); err != nil {
			return purged, fmt.Errorf("failed to delete cache entry %q: %w", entries[i].Key, err)
		}
		purged++
	}
	return purged, nil
}

// Stats описывает содержимое кеша
type Stats struct {
	Total int
	Fresh int
}

// Stats считает записи
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	entries, err := c.store.ListCacheEntries(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list cache entries: %w", err)
	}

	st := Stats{Total: len(entries)}
	for i := range entries {
		if c.fresh(&entries[i]) {
			st.Fresh++
		}
	}
	return st, nil
}

func (c *Cache) fresh(entry *storage.CacheEntry) bool {
	age := c.now().Sub(time.UnixMilli(entry.Timestamp))
	return age < c.ttl
}
