package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/bcp-audit/internal/client/storage"
)

func TestStorage_PutGetCacheEntry(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.GetCacheEntry(ctx, "departments")
	assert.ErrorIs(t, err, storage.ErrCacheEntryNotFound)

	entry := &storage.CacheEntry{
		Key:       "departments",
		Data:      json.RawMessage(`[{"id":1,"name":"Ward 4A"}]`),
		Timestamp: 1700000000000,
	}
	require.NoError(t, store.PutCacheEntry(ctx, entry))

	got, err := store.GetCacheEntry(ctx, "departments")
	require.NoError(t, err)
	assert.Equal(t, entry.Key, got.Key)
	assert.JSONEq(t, string(entry.Data), string(got.Data))
	assert.Equal(t, entry.Timestamp, got.Timestamp)

	// Перезапись
	entry.Data = json.RawMessage(`[]`)
	entry.Timestamp = 1700000000001
	require.NoError(t, store.PutCacheEntry(ctx, entry))

	got, err = store.GetCacheEntry(ctx, "departments")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got.Data))
	assert.Equal(t, int64(1700000000001), got.Timestamp)
}

func TestStorage_PutCacheEntry_EmptyKey(t *testing.T) {
	store := newTestStorage(t)

	assert.Error(t, store.PutCacheEntry(context.Background(), &storage.CacheEntry{}))
	assert.Error(t, store.PutCacheEntry(context.Background(), nil))
}

func TestStorage_DeleteCacheEntries(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	for _, key := range []string{"dashboard:departments", "dashboard:compliance", "trend:6", "user"} {
		require.NoError(t, store.PutCacheEntry(ctx, &storage.CacheEntry{Key: key, Data: json.RawMessage(`{}`)}))
	}

	n, err := store.DeleteCacheEntries(ctx, "dashboard:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := store.ListCacheEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "trend:6", entries[0].Key)
	assert.Equal(t, "user", entries[1].Key)

	// Пустой префикс удаляет все
	n, err = store.DeleteCacheEntries(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err = store.ListCacheEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Повторная очистка пустого кеша
	n, err = store.DeleteCacheEntries(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStorage_DeleteCacheEntry(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.PutCacheEntry(ctx, &storage.CacheEntry{Key: "trend:6", Data: json.RawMessage(`[]`)}))
	require.NoError(t, store.PutCacheEntry(ctx, &storage.CacheEntry{Key: "trend:60", Data: json.RawMessage(`[]`)}))

	require.NoError(t, store.DeleteCacheEntry(ctx, "trend:6"))

	_, err := store.GetCacheEntry(ctx, "trend:6")
	assert.ErrorIs(t, err, storage.ErrCacheEntryNotFound)

	// Запись с тем же префиксом не задета
	_, err = store.GetCacheEntry(ctx, "trend:60")
	require.NoError(t, err)

	// Отсутствующий ключ, не ошибка
	assert.NoError(t, store.DeleteCacheEntry(ctx, "missing"))
}

func TestStorage_ListCacheEntries_SkipsCorrupted(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.PutCacheEntry(ctx, &storage.CacheEntry{Key: "a", Data: json.RawMessage(`1`)}))
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCache).Put([]byte("b"), []byte("{broken"))
	})
	require.NoError(t, err)

	entries, err := store.ListCacheEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Key)

	_, err = store.GetCacheEntry(ctx, "b")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrCacheEntryNotFound)
}
