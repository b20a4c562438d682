package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"custos/internal/auth/models"
	"custos/pkg/platform/sentinel"
)

type SessionStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *SessionStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) newSession(token, username string) *models.Session {
	return &models.Session{
		Token:     token,
		Username:  username,
		Role:      models.RoleCustomer,
		CreatedAt: time.Now(),
	}
}

func (s *SessionStoreSuite) TestSaveAndFind() {
	s.Run("resolves a saved token", func() {
		sess := s.newSession("tok-1", "mikhail")
		s.Require().NoError(s.store.Save(s.ctx, sess))

		found, err := s.store.FindByToken(s.ctx, "tok-1")
		s.Require().NoError(err)
		s.Equal(sess, found)
	})

	s.Run("returns ErrNotFound for an unknown token", func() {
		_, err := s.store.FindByToken(s.ctx, "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *SessionStoreSuite) TestDelete() {
	s.Run("deletes a session by token", func() {
		s.Require().NoError(s.store.Save(s.ctx, s.newSession("tok-1", "mikhail")))
		s.Require().NoError(s.store.Delete(s.ctx, "tok-1"))

		_, err := s.store.FindByToken(s.ctx, "tok-1")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns ErrNotFound for an unknown token", func() {
		s.Require().ErrorIs(s.store.Delete(s.ctx, "missing"), sentinel.ErrNotFound)
	})
}

func (s *SessionStoreSuite) TestDeleteByUsername() {
	s.Run("revokes every session of one principal", func() {
		s.Require().NoError(s.store.Save(s.ctx, s.newSession("tok-1", "mikhail")))
		s.Require().NoError(s.store.Save(s.ctx, s.newSession("tok-2", "mikhail")))
		s.Require().NoError(s.store.Save(s.ctx, s.newSession("tok-3", "root")))

		removed, err := s.store.DeleteByUsername(s.ctx, "mikhail")
		s.Require().NoError(err)
		s.Equal(2, removed)

		_, err = s.store.FindByToken(s.ctx, "tok-1")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.store.FindByToken(s.ctx, "tok-2")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		// Other principals' sessions are untouched.
		_, err = s.store.FindByToken(s.ctx, "tok-3")
		s.Require().NoError(err)
	})

	s.Run("revoking a principal with no sessions removes nothing", func() {
		removed, err := s.store.DeleteByUsername(s.ctx, "nobody")
		s.Require().NoError(err)
		s.Zero(removed)
	})
}
