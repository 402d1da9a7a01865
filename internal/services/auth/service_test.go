package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/szabolcsj/weblabor/internal/dependencies/mocks"
	sessionmemory "github.com/szabolcsj/weblabor/internal/session/memory"
	"github.com/szabolcsj/weblabor/internal/storage/memory"
	"github.com/szabolcsj/weblabor/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	sessions *sessionmemory.Store
	clock    *mocks.MockClock
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.sessions = sessionmemory.New(s.clock)
	hasher := NewBcryptHasher(4)
	s.service = New(s.storage, s.sessions, hasher, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.User.Username)
	s.False(session.User.IsAdmin)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestRegisterPersistsUser() {
	_, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	user, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("secret123", user.PasswordHash)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "other456")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterSessionIsResolvable() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	user, err := s.service.ResolveSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
}

// Authenticate / Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal("alice", session.User.Username)
}

func (s *ServiceSuite) TestLoginUnknownUser() {
	_, err := s.service.Login(s.ctx, "bob", "whatever")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	// The same error as for an unknown user
	_, err = s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestTokensAreUnique() {
	s1, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)
	s2, err := s.service.Login(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.NotEqual(s1.Token, s2.Token)
	s.Contains(s1.Token, "sess_")
}

// ResolveSession tests

func (s *ServiceSuite) TestResolveSessionUnknownToken() {
	_, err := s.service.ResolveSession(s.ctx, "sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestResolveSessionExpired() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ResolveSession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestResolveSessionSlidingExpiry() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	// Activity at hour 20 refreshes the deadline
	s.clock.Advance(20 * time.Hour)
	_, err = s.service.ResolveSession(s.ctx, session.Token)
	s.Require().NoError(err)

	// Hour 30 is inside the refreshed window
	s.clock.Advance(10 * time.Hour)
	_, err = s.service.ResolveSession(s.ctx, session.Token)
	s.NoError(err)
}

func (s *ServiceSuite) TestResolveSessionSeesRoleChange() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	user, err := s.service.ResolveSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.False(user.IsAdmin)

	s.Require().NoError(s.storage.SetUserAdmin(s.ctx, user.ID, true))

	user, err = s.service.ResolveSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.True(user.IsAdmin)
}

func (s *ServiceSuite) TestResolveSessionDeletedUser() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	// Simulate the account disappearing under a live session
	s.storage = memory.New()
	hasher := NewBcryptHasher(4)
	s.service = New(s.storage, s.sessions, hasher, s.clock, DefaultConfig(), testutil.NopLogger())

	_, err = s.service.ResolveSession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

// InvalidateSession tests

func (s *ServiceSuite) TestInvalidateSession() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.Require().NoError(s.service.InvalidateSession(s.ctx, session.Token))

	_, err = s.service.ResolveSession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

// Admin management tests

func (s *ServiceSuite) TestSetUserAdmin() {
	session, err := s.service.Register(s.ctx, "alice", "secret123")
	s.Require().NoError(err)

	s.Require().NoError(s.service.SetUserAdmin(s.ctx, session.UserID, true))

	users, err := s.service.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.True(users[0].IsAdmin)
}

func (s *ServiceSuite) TestSetUserAdminUnknownUser() {
	err := s.service.SetUserAdmin(s.ctx, 9999, true)
	s.Error(err)
}
