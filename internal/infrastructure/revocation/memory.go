// Package revocation provides the process-local revocation registry: the set
// of revoked token identifiers consulted on every authenticated request.
package revocation

import (
	"context"
	"sync"
	"time"
)

// MemorySet is an in-memory revoked-jti set. Entries live for the process
// lifetime; the ttl hint is ignored. Safe for concurrent use.
type MemorySet struct {
	mu   sync.RWMutex
	jtis map[string]struct{}
}

func NewMemorySet() *MemorySet {
	return &MemorySet{jtis: make(map[string]struct{})}
}

// Revoke adds a jti to the set. Re-adding a known jti is a no-op.
func (s *MemorySet) Revoke(_ context.Context, jti string, _ time.Duration) error {
	s.mu.Lock()
	s.jtis[jti] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *MemorySet) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	_, ok := s.jtis[jti]
	s.mu.RUnlock()
	return ok, nil
}

// Len reports the number of revoked identifiers currently held.
func (s *MemorySet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jtis)
}
