package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/bcp-audit/internal/client/storage"
)

func TestStorage_SaveGetDeleteAuth(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	auth := &storage.AuthData{
		Username:   "admin",
		Name:       "ICT Administrator",
		Role:       "ict-admin",
		Department: "ICT",
		Token:      "jwt-token",
		ExpiresAt:  time.Now().Add(time.Hour).Unix(),
	}

	// Проверяем что GetAuth до сохранения выдаст ErrAuthNotFound
	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	// IsAuthenticated должна вернуть true (токен не просрочен)
	authOk, err := store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authOk)

	// Обновляем auth с истекшим токеном
	auth.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	require.NoError(t, store.SaveAuth(ctx, auth))

	authOk, err = store.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authOk)

	require.NoError(t, store.DeleteAuth(ctx))

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	// Повторное удаление
	assert.ErrorIs(t, store.DeleteAuth(ctx), storage.ErrAuthNotFound)
}

func TestStorage_IsAuthenticated(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		auth *storage.AuthData
		name string
		want bool
	}{
		{name: "no auth", auth: nil, want: false},
		{name: "empty token", auth: &storage.AuthData{Username: "admin"}, want: false},
		{name: "no expiry", auth: &storage.AuthData{Token: "t"}, want: true},
		{name: "expired", auth: &storage.AuthData{Token: "t", ExpiresAt: time.Now().Add(-time.Minute).Unix()}, want: false},
		{name: "valid", auth: &storage.AuthData{Token: "t", ExpiresAt: time.Now().Add(time.Minute).Unix()}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStorage(t)
			if tt.auth != nil {
				require.NoError(t, store.SaveAuth(ctx, tt.auth))
			}

			ok, err := store.IsAuthenticated(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestStorage_Auth_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Удаляем bucket auth напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketAuth)
	})
	require.NoError(t, err)

	err = store.SaveAuth(ctx, &storage.AuthData{Username: "test"})
	assert.ErrorContains(t, err, "auth bucket not found")

	_, err = store.GetAuth(ctx)
	assert.ErrorContains(t, err, "auth bucket not found")

	err = store.DeleteAuth(ctx)
	assert.ErrorContains(t, err, "auth bucket not found")

	_, err = store.IsAuthenticated(ctx)
	assert.Error(t, err)
}
