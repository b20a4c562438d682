package service

import (
	"context"
	"errors"
	"time"

	"custos/internal/auth/models"
	dErrors "custos/pkg/domain-errors"
	"custos/pkg/platform/sentinel"
)

// Login authenticates username/password and opens a session for the caller.
// An unknown username fails with CodeNotFound, a wrong password with
// CodeUnauthorized; neither touches any existing session. On success the
// caller receives a fresh opaque token; tokens from earlier logins keep
// resolving to their own sessions.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.metrics.ObserveLogin("invalid")
		return nil, err
	}

	p, err := s.principals.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// Burn the same hash work as a real verification so the two
			// failure modes are not separable by timing.
			s.hasher.Verify(s.dummyDigest, req.Password)
			s.metrics.ObserveLogin("unknown_user")
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		s.metrics.ObserveLogin("error")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up principal")
	}

	if !s.hasher.Verify(p.CredentialDigest, req.Password) {
		s.logger.WarnContext(ctx, "login rejected", "username", req.Username)
		s.metrics.ObserveLogin("bad_password")
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid password")
	}

	sess := &models.Session{
		Token:     s.hasher.NewSessionToken(),
		Username:  p.Username,
		Role:      p.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.metrics.ObserveLogin("error")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}

	s.logger.InfoContext(ctx, "login succeeded", "username", p.Username)
	s.metrics.ObserveLogin("success")
	s.metrics.AddActiveSessions(1)

	return sess, nil
}
