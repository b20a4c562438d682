// Package session stores active sessions keyed by their opaque token. One
// session object exists per authenticated caller; nothing here is persisted.
package session

import (
	"context"
	"sync"

	"custos/internal/auth/models"
	"custos/pkg/platform/sentinel"
)

type InMemory struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewInMemory() *InMemory {
	return &InMemory{sessions: make(map[string]*models.Session)}
}

// Save stores sess under its token, replacing any session already held under
// that token.
func (s *InMemory) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

// FindByToken resolves a token to its session, or sentinel.ErrNotFound.
func (s *InMemory) FindByToken(_ context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[token]; ok {
		return sess, nil
	}
	return nil, sentinel.ErrNotFound
}

// Delete removes the session held under token, or sentinel.ErrNotFound.
func (s *InMemory) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.sessions, token)
	return nil
}

// DeleteByUsername revokes every session belonging to username and reports
// how many were removed. Zero is not an error; a principal may simply not be
// logged in.
func (s *InMemory) DeleteByUsername(_ context.Context, username string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if sess.Username == username {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}
