package api

import (
	"context"
	"sync"
)

// MemoryTokenStore хранит credential только в памяти процесса
type MemoryTokenStore struct {
	token string
	mu    sync.RWMutex
}

// NewMemoryTokenStore создает хранилище с начальным токеном (может быть пустым)
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (s *MemoryTokenStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// SetToken устанавливает credential
func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) ClearToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
