package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func TestNew_FileDatabaseReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	_, err = s.UpdateDepartmentPreparedness(ctx, 3, true, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// повторный запуск миграций не дублирует seed и сохраняет изменения
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	departments, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, 28)
	assert.True(t, departments[2].Prepared)
	require.NoError(t, s.Ping(ctx))
}

func TestUserStorage_UpsertUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		Username:     "admin",
		PasswordHash: "hash-1",
		Name:         "ICT Administrator",
		Email:        "admin@hospital.com",
		Role:         models.RoleICTAdmin,
		Department:   "Information Technology",
	}
	require.NoError(t, s.UpsertUser(ctx, user))
	require.NotZero(t, user.ID)
	firstID := user.ID

	retrieved, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, firstID, retrieved.ID)
	assert.Equal(t, "hash-1", retrieved.PasswordHash)
	assert.Equal(t, models.RoleICTAdmin, retrieved.Role)
	assert.Nil(t, retrieved.LastLogin)
	assert.False(t, retrieved.CreatedAt.IsZero())

	// повторный upsert обновляет пароль, id сохраняется
	again := &models.User{Username: "admin", PasswordHash: "hash-2", Role: models.RoleICTAdmin}
	require.NoError(t, s.UpsertUser(ctx, again))
	assert.Equal(t, firstID, again.ID)

	retrieved, err = s.GetUserByID(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, "hash-2", retrieved.PasswordHash)
}

func TestUserStorage_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	err = s.UpdateLastLogin(ctx, 999, time.Now())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{Username: "user", PasswordHash: "h", Role: models.RoleUser}
	require.NoError(t, s.UpsertUser(ctx, user))

	loginAt := time.Date(2024, 1, 15, 10, 0, 0, 123, time.UTC)
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginAt))

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.LastLogin)
	assert.True(t, loginAt.Equal(*retrieved.LastLogin))
}
