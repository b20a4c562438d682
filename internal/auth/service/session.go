package service

import (
	"context"
	"errors"

	"custos/internal/auth/models"
	dErrors "custos/pkg/domain-errors"
	"custos/pkg/platform/sentinel"
)

// errNoActiveSession is the shared Anonymous-state failure. Every operation
// that needs a live session reports it identically.
func errNoActiveSession() error {
	return dErrors.New(dErrors.CodeUnauthorized, "no active session")
}

// resolveSession maps a caller token to its live session and the registry
// principal behind it. Empty and unknown tokens are the Anonymous state.
//
// The principal lookup is not an optimization: a login that passed its
// credential check while an administrative delete was running can land its
// session after revocation already swept the store. Re-validating against
// the registry on every resolution means such a session never carries a
// capability; it is revoked here on first use.
func (s *Service) resolveSession(ctx context.Context, token string) (*models.Session, *models.Principal, error) {
	if token == "" {
		return nil, nil, errNoActiveSession()
	}
	sess, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, errNoActiveSession()
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve session")
	}

	p, err := s.principals.FindByUsername(ctx, sess.Username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// The session outlived its principal; reap it rather than
			// honoring a dangling identity.
			if delErr := s.sessions.Delete(ctx, token); delErr == nil {
				s.metrics.AddActiveSessions(-1)
			}
			return nil, nil, errNoActiveSession()
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up principal")
	}

	return sess, p, nil
}

// Logout closes the caller's session and returns the username that was
// logged out. An anonymous caller fails with CodeUnauthorized.
func (s *Service) Logout(ctx context.Context, token string) (string, error) {
	sess, _, err := s.resolveSession(ctx, token)
	if err != nil {
		return "", err
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// Lost the race with another logout or a revocation. The session
			// is gone either way, and whoever removed it moved the gauge.
			return "", errNoActiveSession()
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete session")
	}

	s.logger.InfoContext(ctx, "logout", "username", sess.Username)
	s.metrics.AddActiveSessions(-1)

	return sess.Username, nil
}

// CurrentUser returns the principal behind the caller's session. An anonymous
// caller fails with CodeUnauthorized. The caller renders the role-specific
// projection via Principal.Describe.
func (s *Service) CurrentUser(ctx context.Context, token string) (*models.Principal, error) {
	_, p, err := s.resolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return p, nil
}
