package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/bcp-audit/internal/client/api"
	"github.com/iudanet/bcp-audit/internal/client/storage"
	"github.com/iudanet/bcp-audit/internal/models"
)

// Session хранит bearer credential клиента.
// Запомненная сессия ("remember me") лежит в storage.AuthStorage и переживает
// перезапуск; обычная живет только в памяти процесса.
type Session struct {
	store      storage.AuthStorage
	logger     *slog.Logger
	profile    *models.UserProfile
	token      string
	mu         sync.RWMutex
	remembered bool
}

// Compile-time check that Session implements api.TokenStore
var _ api.TokenStore = (*Session)(nil)

// NewSession создает сессию и восстанавливает запомненный credential, если он не истек
func NewSession(ctx context.Context, store storage.AuthStorage, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{store: store, logger: logger}

	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) restore(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	ok, err := s.store.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check stored session: %w", err)
	}
	if !ok {
		return nil
	}

	data, err := s.store.GetAuth(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored session: %w", err)
	}

	s.token = data.Token
	s.remembered = true
	s.profile = &models.UserProfile{
		Username:   data.Username,
		Name:       data.Name,
		Role:       data.Role,
		Department: data.Department,
	}
	return nil
}

// Token возвращает текущий токен или ""
func (s *Session) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// ClearToken удаляет credential из памяти и из хранилища (logout, 401)
func (s *Session) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remembered := s.remembered
	s.token = ""
	s.profile = nil
	s.remembered = false

	if !remembered || s.store == nil {
		return nil
	}
	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete stored session: %w", err)
	}
	return nil
}

// Start устанавливает credential после успешного входа.
// remember сохраняет его в хранилище, иначе прежняя запомненная сессия удаляется.
func (s *Session) Start(ctx context.Context, token string, profile models.UserProfile, expiresIn time.Duration, remember bool) error {
	if token == "" {
		return fmt.Errorf("empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.profile = &profile
	s.remembered = remember

	if s.store == nil {
		return nil
	}

	if !remember {
		if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
			s.logger.WarnContext(ctx, "failed to drop previous stored session", slog.Any("error", err))
		}
		return nil
	}

	data := &storage.AuthData{
		Username:   profile.Username,
		Name:       profile.Name,
		Role:       profile.Role,
		Department: profile.Department,
		Token:      token,
	}
	if expiresIn > 0 {
		data.ExpiresAt = time.Now().Add(expiresIn).Unix()
	}
	if err := s.store.SaveAuth(ctx, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// IsAuthenticated сообщает, есть ли credential
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Remembered сообщает, сохранена ли сессия между запусками
func (s *Session) Remembered() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remembered
}

// Profile возвращает копию профиля текущего пользователя или nil
func (s *Session) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}
