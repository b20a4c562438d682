// Package principal holds the registry of known principals. The in-memory
// implementation is the only one: principals live for the process lifetime.
package principal

import (
	"context"
	"sync"

	"custos/internal/auth/models"
	"custos/pkg/platform/sentinel"
)

// InMemory is an insertion-ordered principal registry. It favors clarity over
// performance; lookups are linear, which keeps enumeration order and
// uniqueness checks trivially consistent under one lock.
type InMemory struct {
	mu         sync.RWMutex
	principals []*models.Principal
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// Create appends p if its username is not yet taken. The scan and the append
// run under one lock, so two concurrent registrations of the same username
// can never both succeed. Returns sentinel.ErrAlreadyUsed on a taken name.
func (s *InMemory) Create(_ context.Context, p *models.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.principals {
		if existing.Username == p.Username {
			return sentinel.ErrAlreadyUsed
		}
	}
	s.principals = append(s.principals, p)
	return nil
}

// FindByUsername returns the principal registered under username, or
// sentinel.ErrNotFound.
func (s *InMemory) FindByUsername(_ context.Context, username string) (*models.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.principals {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// Delete removes the principal registered under username. Returns
// sentinel.ErrNotFound when no such principal exists.
func (s *InMemory) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.principals {
		if p.Username == username {
			s.principals = append(s.principals[:i], s.principals[i+1:]...)
			return nil
		}
	}
	return sentinel.ErrNotFound
}

// List returns a snapshot of all principals in registration order. An empty
// registry yields an empty, non-nil slice.
func (s *InMemory) List(_ context.Context) ([]*models.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Principal, len(s.principals))
	copy(out, s.principals)
	return out, nil
}

// Count reports the number of registered principals.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.principals), nil
}
