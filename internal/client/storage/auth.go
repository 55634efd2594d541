package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the remembered session on client.
// Only "remember me" sessions reach this layer, others live in memory.
type AuthStorage interface {
	// SaveAuth stores authentication data, overwriting the previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout, 401)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a non-expired credential exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents the remembered session in storage
type AuthData struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Token      string `json:"token"`
	ExpiresAt  int64  `json:"expires_at"` // unix seconds, 0 если срок неизвестен
}
