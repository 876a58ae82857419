// Package revocation implements the set of logged-out tokens consulted on every validation.
package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps revoked tokens in process memory. Entries live until Prune
// observes that the token has expired.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process revocation set.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke records token until expiresAt. A later expiry for the same token wins.
func (s *MemoryStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.entries[token]; !ok || expiresAt.After(current) {
		s.entries[token] = expiresAt
	}

	return nil
}

// IsRevoked reports whether token is in the set.
func (s *MemoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[token]

	return ok, nil
}

// Prune removes tokens whose expiry has passed.
func (s *MemoryStore) Prune(_ context.Context) (int, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, expiresAt := range s.entries {
		if !expiresAt.After(now) {
			delete(s.entries, token)
			removed++
		}
	}

	return removed, nil
}

// Len returns the number of tracked tokens.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
