package service

import (
	"time"

	"custos/internal/auth/models"
	dErrors "custos/pkg/domain-errors"
	"custos/pkg/platform/sentinel"
)

// TestAdminCapabilityGate verifies that administrative operations are refused
// for anyone not holding an Admin session, without leaking target existence.
func (s *ServiceSuite) TestAdminCapabilityGate() {
	s.registerCustomer("mikhail", "pass123")
	s.registerAdmin("root", "adminpass", 10)

	s.Run("anonymous callers are forbidden", func() {
		_, err := s.service.ListUsers(s.ctx, "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

		err = s.service.DeleteUser(s.ctx, "never-issued", "mikhail")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("customer sessions are forbidden", func() {
		sess, err := s.service.Login(s.ctx, models.LoginRequest{Username: "mikhail", Password: "pass123"})
		s.Require().NoError(err)

		_, err = s.service.ListUsers(s.ctx, sess.Token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

		err = s.service.DeleteUser(s.ctx, sess.Token, "root")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("forbidden response is identical for present and absent targets", func() {
		sess, err := s.service.Login(s.ctx, models.LoginRequest{Username: "mikhail", Password: "pass123"})
		s.Require().NoError(err)

		errPresent := s.service.DeleteUser(s.ctx, sess.Token, "root")
		errAbsent := s.service.DeleteUser(s.ctx, sess.Token, "ghost")
		s.Require().Error(errPresent)
		s.Require().Error(errAbsent)
		s.Equal(errPresent.Error(), errAbsent.Error())
	})
}

// TestAdminDeleteUser verifies deletion semantics including session
// revocation and self-delete.
func (s *ServiceSuite) TestAdminDeleteUser() {
	s.Run("deleting an absent username mutates nothing", func() {
		s.registerAdmin("root", "adminpass", 10)
		sess, err := s.service.Login(s.ctx, models.LoginRequest{Username: "root", Password: "adminpass"})
		s.Require().NoError(err)

		err = s.service.DeleteUser(s.ctx, sess.Token, "ghost")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		count, err := s.principals.Count(s.ctx)
		s.Require().NoError(err)
		s.Equal(1, count)
	})

	s.Run("deleting a user revokes all their sessions", func() {
		s.SetupTest()
		s.registerCustomer("mikhail", "pass123")
		s.registerAdmin("root", "adminpass", 10)

		victim1, err := s.service.Login(s.ctx, models.LoginRequest{Username: "mikhail", Password: "pass123"})
		s.Require().NoError(err)
		victim2, err := s.service.Login(s.ctx, models.LoginRequest{Username: "mikhail", Password: "pass123"})
		s.Require().NoError(err)
		adminSess, err := s.service.Login(s.ctx, models.LoginRequest{Username: "root", Password: "adminpass"})
		s.Require().NoError(err)

		s.Require().NoError(s.service.DeleteUser(s.ctx, adminSess.Token, "mikhail"))

		_, err = s.sessions.FindByToken(s.ctx, victim1.Token)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.sessions.FindByToken(s.ctx, victim2.Token)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		// Admin session survives.
		_, err = s.service.CurrentUser(s.ctx, adminSess.Token)
		s.Require().NoError(err)
	})

	s.Run("a session landed after revocation carries no capability", func() {
		s.SetupTest()
		s.registerAdmin("root", "adminpass", 10)
		sess, err := s.service.Login(s.ctx, models.LoginRequest{Username: "root", Password: "adminpass"})
		s.Require().NoError(err)

		s.Require().NoError(s.service.DeleteUser(s.ctx, sess.Token, "root"))

		// A login that passed its credential check while the delete was
		// running can save its session after revocation already swept the
		// store; plant exactly that session.
		stale := &models.Session{
			Token:     "raced-past-revocation",
			Username:  "root",
			Role:      models.RoleAdmin,
			CreatedAt: time.Now(),
		}
		s.Require().NoError(s.sessions.Save(s.ctx, stale))

		// The token must not grant admin capability: the gate reads the
		// registry, and root is gone.
		_, err = s.service.ListUsers(s.ctx, stale.Token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

		// First use reaped the dangling session.
		_, err = s.sessions.FindByToken(s.ctx, stale.Token)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		_, err = s.service.CurrentUser(s.ctx, stale.Token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("admin deleting themself is implicitly logged out", func() {
		s.SetupTest()
		s.registerAdmin("root", "adminpass", 10)
		sess, err := s.service.Login(s.ctx, models.LoginRequest{Username: "root", Password: "adminpass"})
		s.Require().NoError(err)

		s.Require().NoError(s.service.DeleteUser(s.ctx, sess.Token, "root"))

		// The session died with the principal.
		_, err = s.service.CurrentUser(s.ctx, sess.Token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

		_, err = s.service.ListUsers(s.ctx, sess.Token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

		count, err := s.principals.Count(s.ctx)
		s.Require().NoError(err)
		s.Zero(count)
	})
}
