package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/server/storage"
	"github.com/iudanet/bcp-audit/pkg/api"
)

//go:generate moq -out token_mock.go . TokenIssuer

// TokenIssuer выпускает access token для пользователя
type TokenIssuer interface {
	GenerateAccessToken(userID int64, username, role string) (string, int64, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	userStorage storage.UserStorage
	tokens      TokenIssuer
	now         func() time.Time
	responder
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		responder:   responder{logger: logger},
		userStorage: userStorage,
		tokens:      tokens,
		now:         time.Now,
	}
}

// Login обрабатывает POST /api/auth/login
// Проверяет пароль по bcrypt хешу и выдает JWT access token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		h.sendError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login attempt for unknown user", slog.String("username", req.Username))
			h.sendAuthFailed(w)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "invalid password", slog.String("username", req.Username))
		h.sendAuthFailed(w)
		return
	}

	token, expiresIn, err := h.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Ошибка обновления last_login не мешает входу
	now := h.now().UTC()
	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, now); err != nil {
		h.logger.WarnContext(ctx, "failed to update last login", slog.Int64("user_id", user.ID), slog.Any("error", err))
	} else {
		user.LastLogin = &now
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.String("username", user.Username),
		slog.String("role", user.Role),
		slog.Bool("remember_me", req.RememberMe),
	)

	h.sendJSON(w, api.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		User:      user.Profile(),
		ExpiresIn: expiresIn,
	}, http.StatusOK)
}

// Me обрабатывает GET /users/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "missing user in context", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.sendError(w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Int64("user_id", userID), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.UserResponse{Data: user.Profile()}, http.StatusOK)
}

func (h *AuthHandler) sendAuthFailed(w http.ResponseWriter) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   "Authentication failed",
		Message: "Invalid username or password",
	}, http.StatusUnauthorized)
}

// SeedUser описывает учетную запись, создаваемую при старте сервера
type SeedUser struct {
	Username   string
	Password   string
	Name       string
	Email      string
	Role       string
	Department string
}

// SeedUsers создает или обновляет пользователей с bcrypt хешами паролей
func SeedUsers(ctx context.Context, userStorage storage.UserStorage, users []SeedUser, cost int) error {
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Username, err)
		}

		user := &models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Name:         u.Name,
			Email:        u.Email,
			Role:         u.Role,
			Department:   u.Department,
			CreatedAt:    time.Now().UTC(),
		}
		if err := userStorage.UpsertUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}
	return nil
}

// DefaultUsers возвращает учетные записи stub-сервера: администратора ICT и пользователя
func DefaultUsers(adminPassword, userPassword string) []SeedUser {
	return []SeedUser{
		{
			Username:   "admin",
			Password:   adminPassword,
			Name:       "ICT Administrator",
			Email:      "admin@hospital.com",
			Role:       models.RoleICTAdmin,
			Department: "Information Technology",
		},
		{
			Username:   "user",
			Password:   userPassword,
			Name:       "General User",
			Email:      "user@hospital.com",
			Role:       models.RoleUser,
			Department: "General Ward",
		},
	}
}
