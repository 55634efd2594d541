package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/validation"
	pkgapi "github.com/iudanet/bcp-audit/pkg/api"
)

//go:generate moq -out login_mock.go . LoginClient

// LoginClient часть api.Client, нужная для входа
type LoginClient interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.LoginResponse, error)
}

// Service предоставляет функции авторизации
type Service struct {
	client  LoginClient
	session *Session
	logger  *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(client LoginClient, session *Session, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:  client,
		session: session,
		logger:  logger,
	}
}

// Login выполняет аутентификацию пользователя и запускает сессию
func (s *Service) Login(ctx context.Context, username, password string, remember bool) (*models.UserProfile, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	resp, err := s.client.Login(ctx, pkgapi.LoginRequest{
		Username:   username,
		Password:   password,
		RememberMe: remember,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("login failed: server returned empty token")
	}

	profile := resp.User
	if profile.Username == "" {
		profile.Username = username
	}

	expiresIn := time.Duration(resp.ExpiresIn) * time.Second
	if err := s.session.Start(ctx, resp.Token, profile, expiresIn, remember); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "logged in",
		slog.String("username", profile.Username),
		slog.String("role", profile.Role),
		slog.Bool("remember", remember))

	return &profile, nil
}

// Logout выполняет выход из системы: удаляет credential локально.
// Сервер stub не хранит сессий, уведомлять его не нужно.
func (s *Service) Logout(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return nil
	}
	if err := s.session.ClearToken(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// Session возвращает текущую сессию
func (s *Service) Session() *Session {
	return s.session
}
