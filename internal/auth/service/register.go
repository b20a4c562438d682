package service

import (
	"context"
	"errors"

	"custos/internal/auth/models"
	dErrors "custos/pkg/domain-errors"
	"custos/pkg/platform/sentinel"
)

// Register creates a new principal of the requested variant. The caller's
// session, if any, is not touched. A taken username fails with CodeConflict
// and leaves the registry unchanged.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.Principal, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.metrics.ObserveRegistration("invalid")
		return nil, err
	}

	p := &models.Principal{
		Username:         req.Username,
		Email:            req.Email,
		CredentialDigest: s.hasher.Hash(req.Password),
		Role:             req.Role,
	}
	switch req.Role {
	case models.RoleCustomer:
		p.Address = req.Address
	case models.RoleAdmin:
		p.AccessLevel = req.AccessLevel
	}

	if err := s.principals.Create(ctx, p); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.metrics.ObserveRegistration("conflict")
			return nil, dErrors.New(dErrors.CodeConflict, "username already exists")
		}
		s.metrics.ObserveRegistration("error")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create principal")
	}

	s.logger.InfoContext(ctx, "principal registered",
		"username", p.Username,
		"role", p.Role,
	)
	s.metrics.ObserveRegistration("success")

	return p, nil
}
