package session

import (
	"context"
	"sync"
)

// Memory - хранилище в памяти процесса. Используется по умолчанию
// и в тестах, данные живут до перезапуска сервиса.
type Memory struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// Создание хранилища
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (s *Memory) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	// копия, чтобы вызывающий не менял содержимое хранилища
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *Memory) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.items[key] = stored
	return nil
}

func (s *Memory) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
