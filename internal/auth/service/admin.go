package service

import (
	"context"
	"errors"

	"custos/internal/auth/models"
	dErrors "custos/pkg/domain-errors"
	"custos/pkg/platform/sentinel"
)

// requireAdmin gates the administrative operations on the caller's session
// holding the Admin variant. Anonymous callers and non-admin sessions get the
// same CodeForbidden, before any target lookup, so the failure leaks nothing
// about whether a target username exists.
//
// The gate reads the live registry principal, not the role frozen into the
// session at login time; a session whose principal has been deleted resolves
// as anonymous.
func (s *Service) requireAdmin(ctx context.Context, token string) (*models.Session, error) {
	sess, p, err := s.resolveSession(ctx, token)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return nil, dErrors.New(dErrors.CodeForbidden, "admin privileges required")
		}
		return nil, err
	}
	if !p.IsAdmin() {
		return nil, dErrors.New(dErrors.CodeForbidden, "admin privileges required")
	}
	return sess, nil
}

// ListUsers returns all registered principals in registration order. Admin
// capability required.
func (s *Service) ListUsers(ctx context.Context, token string) ([]*models.Principal, error) {
	if _, err := s.requireAdmin(ctx, token); err != nil {
		return nil, err
	}

	list, err := s.principals.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list principals")
	}
	return list, nil
}

// DeleteUser removes the principal registered under username and revokes
// every session it holds, so no live session can reference a removed
// principal. An admin deleting their own username is therefore logged out by
// the same call. Admin capability required; an absent username fails with
// CodeNotFound and mutates nothing.
func (s *Service) DeleteUser(ctx context.Context, token, username string) error {
	caller, err := s.requireAdmin(ctx, token)
	if err != nil {
		return err
	}

	if _, err := s.principals.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up principal")
	}

	revoked, err := s.sessions.DeleteByUsername(ctx, username)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke sessions")
	}
	s.metrics.AddActiveSessions(float64(-revoked))

	if err := s.principals.Delete(ctx, username); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete principal")
	}

	s.logger.InfoContext(ctx, "principal deleted",
		"username", username,
		"deleted_by", caller.Username,
		"sessions_revoked", revoked,
		"self_delete", caller.Username == username,
	)
	s.metrics.IncrementPrincipalsDeleted()

	return nil
}
