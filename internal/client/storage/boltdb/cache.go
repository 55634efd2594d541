package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bcp-audit/internal/client/storage"
)

// PutCacheEntry сохраняет запись кеша по ключу entry.Key
func (s *Storage) PutCacheEntry(ctx context.Context, entry *storage.CacheEntry) error {
	if entry == nil || entry.Key == "" {
		return fmt.Errorf("cache entry key is empty")
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	return s.update(bucketCache, func(bucket *bbolt.Bucket) error {
		if err := bucket.Put([]byte(entry.Key), data); err != nil {
			return fmt.Errorf("failed to save cache entry: %w", err)
		}
		return nil
	})
}

// GetCacheEntry возвращает запись или storage.ErrCacheEntryNotFound
func (s *Storage) GetCacheEntry(ctx context.Context, key string) (*storage.CacheEntry, error) {
	var entry *storage.CacheEntry

	err := s.view(bucketCache, func(bucket *bbolt.Bucket) error {
		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrCacheEntryNotFound
		}

		entry = &storage.CacheEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal cache entry %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteCacheEntry удаляет одну запись
func (s *Storage) DeleteCacheEntry(ctx context.Context, key string) error {
	return s.update(bucketCache, func(bucket *bbolt.Bucket) error {
		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete cache entry %q: %w", key, err)
		}
		return nil
	})
}

// DeleteCacheEntries удаляет записи с ключом, начинающимся с prefix
func (s *Storage) DeleteCacheEntries(ctx context.Context, prefix string) (int, error) {
	deleted := 0

	err := s.update(bucketCache, func(bucket *bbolt.Bucket) error {
		// Ключи собираем заранее: удаление во время итерации курсора сбивает позицию
		var keys [][]byte
		c := bucket.Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, bytes.Clone(k))
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete cache entry %q: %w", k, err)
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// ListCacheEntries возвращает все записи в порядке ключей.
// Поврежденные записи пропускаются.
func (s *Storage) ListCacheEntries(ctx context.Context) ([]storage.CacheEntry, error) {
	var entries []storage.CacheEntry

	err := s.view(bucketCache, func(bucket *bbolt.Bucket) error {
		return bucket.ForEach(func(k, v []byte) error {
			var entry storage.CacheEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return nil
			}
			entry.Key = string(k)
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
