// Package service orchestrates registration, authentication, and the
// administrative operations, composing the principal registry, the session
// store, and the credential hasher.
package service

import (
	"context"
	"io"
	"log/slog"

	"custos/internal/auth/models"
	"custos/internal/platform/metrics"
)

type PrincipalRegistry interface {
	Create(ctx context.Context, p *models.Principal) error
	FindByUsername(ctx context.Context, username string) (*models.Principal, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*models.Principal, error)
}

type SessionStore interface {
	Save(ctx context.Context, sess *models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUsername(ctx context.Context, username string) (int, error)
}

type CredentialHasher interface {
	Hash(plaintext string) string
	Verify(stored, candidate string) bool
	NewSessionToken() string
}

// Service is the authentication facade. It holds references to the registry
// and session store, never copies of their contents.
type Service struct {
	principals PrincipalRegistry
	sessions   SessionStore
	hasher     CredentialHasher
	logger     *slog.Logger
	metrics    *metrics.Metrics

	// dummyDigest is verified when a login names an unknown user, so both
	// login failures cost the same hash work.
	dummyDigest string
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(principals PrincipalRegistry, sessions SessionStore, hasher CredentialHasher, opts ...Option) *Service {
	s := &Service{
		principals:  principals,
		sessions:    sessions,
		hasher:      hasher,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		dummyDigest: hasher.Hash("custos-timing-equalizer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
