package repositories

import (
	"context"
	"sync"
	"time"
)

type stagedEntry struct {
	pending   *PendingDraft
	expiresAt time.Time
}

// MemoryStaging keeps pending drafts in process memory. Used in tests and in
// redis-less deployments; semantics match the redis store.
type MemoryStaging struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]stagedEntry
}

func NewMemoryStaging(ttl time.Duration) *MemoryStaging {
	return &MemoryStaging{
		ttl:  ttl,
		data: make(map[string]stagedEntry),
	}
}

func (s *MemoryStaging) Stage(_ context.Context, key string, pending *PendingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = stagedEntry{
		pending:   pending,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Consume removes the entry so a second read finds nothing.
func (s *MemoryStaging) Consume(_ context.Context, key string) (*PendingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	delete(s.data, key)
	if time.Now().After(entry.expiresAt) {
		return nil, nil
	}
	return entry.pending, nil
}
