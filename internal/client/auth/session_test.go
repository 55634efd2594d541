package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bcp-audit/internal/client/storage"
	"github.com/iudanet/bcp-audit/internal/client/storage/boltdb"
	"github.com/iudanet/bcp-audit/internal/models"
)

func newTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

var adminProfile = models.UserProfile{
	ID:         1,
	Username:   "admin",
	Name:       "ICT Administrator",
	Role:       models.RoleICTAdmin,
	Department: "ICT",
}

func TestSession_Empty(t *testing.T) {
	ctx := context.Background()
	session, err := NewSession(ctx, newTestStore(t), nil)
	require.NoError(t, err)

	token, err := session.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.Profile())

	// Очистка пустой сессии не ошибка
	assert.NoError(t, session.ClearToken(ctx))
}

func TestSession_RememberSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	session, err := NewSession(ctx, store, nil)
	require.NoError(t, err)
	require.NoError(t, session.Start(ctx, "jwt-1", adminProfile, time.Hour, true))

	// Новая сессия поверх того же хранилища
	restored, err := NewSession(ctx, store, nil)
	require.NoError(t, err)

	token, err := restored.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", token)
	assert.True(t, restored.Remembered())
	require.NotNil(t, restored.Profile())
	assert.True(t, restored.Profile().IsAdmin())
}

func TestSession_NotRememberedIsMemoryOnly(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	session, err := NewSession(ctx, store, nil)
	require.NoError(t, err)

	// Сначала запомненная сессия, затем обычная должна ее вытеснить
	require.NoError(t, session.Start(ctx, "jwt-old", adminProfile, time.Hour, true))
	require.NoError(t, session.Start(ctx, "jwt-2", adminProfile, time.Hour, false))

	token, _ := session.Token(ctx)
	assert.Equal(t, "jwt-2", token)
	assert.False(t, session.Remembered())

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	restored, err := NewSession(ctx, store, nil)
	require.NoError(t, err)
	assert.False(t, restored.IsAuthenticated())
}

func TestSession_ExpiredNotRestored(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{
		Username:  "admin",
		Token:     "expired",
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	}))

	session, err := NewSession(ctx, store, nil)
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
}

func TestSession_ClearTokenRemovesStored(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	session, err := NewSession(ctx, store, nil)
	require.NoError(t, err)
	require.NoError(t, session.Start(ctx, "jwt-1", adminProfile, 0, true))

	require.NoError(t, session.ClearToken(ctx))

	token, _ := session.Token(ctx)
	assert.Empty(t, token)
	assert.Nil(t, session.Profile())

	_, err = store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestSession_RestoreFromStore(t *testing.T) {
	store := &storage.AuthStorageMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{Username: "admin", Role: "ict-admin", Token: "stored-jwt"}, nil
		},
	}

	session, err := NewSession(context.Background(), store, nil)
	require.NoError(t, err)

	token, _ := session.Token(context.Background())
	assert.Equal(t, "stored-jwt", token)
	assert.True(t, session.Remembered())
	assert.Equal(t, "ict-admin", session.Profile().Role)
	assert.Len(t, store.GetAuthCalls(), 1)
}

func TestSession_RestoreStoreError(t *testing.T) {
	store := &storage.AuthStorageMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return false, errors.New("bucket missing")
		},
	}

	_, err := NewSession(context.Background(), store, nil)
	assert.ErrorContains(t, err, "bucket missing")
}

func TestSession_ClearTokenDeleteError(t *testing.T) {
	ctx := context.Background()
	store := &storage.AuthStorageMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return false, nil
		},
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			return nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			return errors.New("disk full")
		},
	}

	session, err := NewSession(ctx, store, nil)
	require.NoError(t, err)
	require.NoError(t, session.Start(ctx, "jwt-1", adminProfile, 0, true))
	require.Len(t, store.SaveAuthCalls(), 1)
	assert.Equal(t, "jwt-1", store.SaveAuthCalls()[0].Auth.Token)

	err = session.ClearToken(ctx)
	assert.ErrorContains(t, err, "disk full")
	assert.False(t, session.IsAuthenticated())
	assert.Len(t, store.DeleteAuthCalls(), 1)
}

func TestSession_ClearTokenIgnoresMissing(t *testing.T) {
	ctx := context.Background()
	store := &storage.AuthStorageMock{
		IsAuthenticatedFunc: func(ctx context.Context) (bool, error) {
			return false, nil
		},
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			return nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			return storage.ErrAuthNotFound
		},
	}

	session, err := NewSession(ctx, store, nil)
	require.NoError(t, err)
	require.NoError(t, session.Start(ctx, "jwt-1", adminProfile, 0, true))

	assert.NoError(t, session.ClearToken(ctx))
}

func TestSession_StartEmptyToken(t *testing.T) {
	session, err := NewSession(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Error(t, session.Start(context.Background(), "", adminProfile, 0, false))
}

func TestSession_ProfileIsCopy(t *testing.T) {
	ctx := context.Background()
	session, err := NewSession(ctx, nil, nil)
	require.NoError(t, err)
	require.NoError(t, session.Start(ctx, "jwt", adminProfile, 0, false))

	p := session.Profile()
	p.Role = models.RoleUser
	assert.Equal(t, models.RoleICTAdmin, session.Profile().Role)
}
