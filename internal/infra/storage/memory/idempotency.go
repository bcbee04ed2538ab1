package memory

import (
	"context"
	"sync"
	"time"

	"smarthost/internal/app/middleware"
)

// IdempotencyStore stores results in memory. Records older than TTL are
// treated as absent; a zero TTL keeps them forever.
type IdempotencyStore struct {
	TTL time.Duration
	Now func() time.Time

	mu    sync.RWMutex
	items map[string]middleware.IdempotencyRecord
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{TTL: ttl, items: make(map[string]middleware.IdempotencyRecord)}
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (middleware.IdempotencyRecord, bool, error) {
	s.mu.RLock()
	rec, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return middleware.IdempotencyRecord{}, false, nil
	}
	if s.TTL > 0 && s.now().Sub(rec.OccurredAt) > s.TTL {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return middleware.IdempotencyRecord{}, false, nil
	}
	return rec, true, nil
}

func (s *IdempotencyStore) Save(ctx context.Context, rec middleware.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[rec.Key] = rec
	return nil
}

func (s *IdempotencyStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

var _ middleware.IdempotencyStore = (*IdempotencyStore)(nil)
