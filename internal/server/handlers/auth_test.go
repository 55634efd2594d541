package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/server/storage/sqlite"
	"github.com/iudanet/bcp-audit/pkg/api"
)

// setupTestStorage creates in-memory storage with seeded users
func setupTestStorage(t *testing.T) *sqlite.Storage {
	t.Helper()

	ctx := context.Background()
	s, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})

	require.NoError(t, SeedUsers(ctx, s, DefaultUsers("admin123", "user123"), bcrypt.MinCost))
	return s
}

func newTokenIssuer() *TokenIssuerMock {
	return &TokenIssuerMock{
		GenerateAccessTokenFunc: func(userID int64, username string, role string) (string, int64, error) {
			return "token-" + username, 86400, nil
		},
	}
}

func postJSON(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	s := setupTestStorage(t)
	tokens := newTokenIssuer()
	handler := NewAuthHandler(setupTestLogger(), s, tokens)
	loginAt := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return loginAt }

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/auth/login", api.LoginRequest{
		Username:   "admin",
		Password:   "admin123",
		RememberMe: true,
	}))

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "token-admin", resp.Token)
	assert.Equal(t, int64(86400), resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, models.RoleICTAdmin, resp.User.Role)
	require.NotNil(t, resp.User.LastLogin)
	assert.True(t, loginAt.Equal(*resp.User.LastLogin))

	calls := tokens.GenerateAccessTokenCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, resp.User.ID, calls[0].UserID)
	assert.Equal(t, models.RoleICTAdmin, calls[0].Role)

	stored, err := s.GetUserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	assert.True(t, loginAt.Equal(*stored.LastLogin))
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	s := setupTestStorage(t)

	tests := []struct {
		body       any
		name       string
		wantError  string
		wantStatus int
	}{
		{
			name:       "wrong password",
			body:       api.LoginRequest{Username: "admin", Password: "wrong-password"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authentication failed",
		},
		{
			name:       "unknown user",
			body:       api.LoginRequest{Username: "nobody", Password: "admin123"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Authentication failed",
		},
		{
			name:       "empty password",
			body:       api.LoginRequest{Username: "admin"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Bad Request",
		},
		{
			name:       "invalid json",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
			wantError:  "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := newTokenIssuer()
			handler := NewAuthHandler(setupTestLogger(), s, tokens)

			w := httptest.NewRecorder()
			handler.Login(w, postJSON(t, "/api/auth/login", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Empty(t, tokens.GenerateAccessTokenCalls())
		})
	}
}

func TestAuthHandler_Login_UnauthorizedBody(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), setupTestStorage(t), newTokenIssuer())

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/auth/login", api.LoginRequest{Username: "user", Password: "admin123"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication failed","message":"Invalid username or password"}`, w.Body.String())
}

func TestAuthHandler_Login_TokenError(t *testing.T) {
	tokens := &TokenIssuerMock{
		GenerateAccessTokenFunc: func(int64, string, string) (string, int64, error) {
			return "", 0, errors.New("signing failed")
		},
	}
	handler := NewAuthHandler(setupTestLogger(), setupTestStorage(t), tokens)

	w := httptest.NewRecorder()
	handler.Login(w, postJSON(t, "/api/auth/login", api.LoginRequest{Username: "user", Password: "user123"}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	s := setupTestStorage(t)
	handler := NewAuthHandler(setupTestLogger(), s, newTokenIssuer())

	user, err := s.GetUserByUsername(context.Background(), "user")
	require.NoError(t, err)

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = req.WithContext(WithUser(req.Context(), user.ID, user.Username, user.Role))
		w := httptest.NewRecorder()

		handler.Me(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp api.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "user", resp.Data.Username)
		assert.Equal(t, models.RoleUser, resp.Data.Role)
		assert.Equal(t, "General User", resp.Data.Name)
	})

	t.Run("deleted user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = req.WithContext(WithUser(req.Context(), 999, "ghost", models.RoleUser))
		w := httptest.NewRecorder()

		handler.Me(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Me(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSeedUsers_UpdatesPassword(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, SeedUsers(ctx, s, DefaultUsers("new-admin-pass", "user123"), bcrypt.MinCost))

	user, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("new-admin-pass")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("admin123")))
}
