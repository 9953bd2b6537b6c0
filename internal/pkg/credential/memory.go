package credential

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	credential string
	expiresAt  time.Time
}

// MemoryStore is a process-local Store for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		_ = s.Remove(ctx, key)
		return "", ErrNotFound
	}
	return e.credential, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, credential string, ttl time.Duration) error {
	e := entry{credential: credential}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Ping always succeeds; the store lives in process.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
