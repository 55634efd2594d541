package storage

import (
	"context"
	"time"

	"github.com/iudanet/bcp-audit/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// UpsertUser creates the user or updates the existing one with the same username.
	// user.ID is set to the stored identifier.
	UpsertUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID int64, lastLogin time.Time) error
}
