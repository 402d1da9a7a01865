package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/szabolcsj/weblabor/internal/dependencies/clock"
	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/session"
	"github.com/szabolcsj/weblabor/internal/storage"
)

// Errors
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers must not be able to tell which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
)

// Session represents an authenticated session handed to the client
type Session struct {
	Token     string
	UserID    int64
	User      model.User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// Service handles credential verification and session management.
// Sessions live in the injected session.Store; users are always
// re-read from storage when a session is resolved.
type Service struct {
	storage  storage.Storage
	sessions session.Store
	hasher   PasswordHasher
	clock    clock.Clock
	logger   *slog.Logger

	sessionDuration time.Duration
}

// New creates a new auth Service
func New(store storage.Storage, sessions session.Store, hasher PasswordHasher, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         store,
		sessions:        sessions,
		hasher:          hasher,
		clock:           clk,
		logger:          logger,
		sessionDuration: cfg.SessionDuration,
	}
}

// Authenticate verifies a username/password pair against storage.
// Unknown user and wrong password both return ErrInvalidCredentials;
// storage failures propagate wrapped so callers can tell "could not
// check" apart from "checked and failed".
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and creates a session. The session-store write is
// acknowledged before this returns, so the token is resolvable by the
// time the client sees it.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, user)
}

// Register creates a new non-admin account and logs it in. The
// existence pre-check gives a fast conflict answer, but the storage
// layer's unique constraint is what actually guarantees uniqueness
// under concurrent registration.
func (s *Service) Register(ctx context.Context, username, password string) (*Session, error) {
	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, username, hash, false)
	if err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered", slog.String("username", username), slog.Int64("user_id", user.ID))

	return s.createSession(ctx, user)
}

// ResolveSession resolves a token to the current user. The user is
// loaded fresh from storage, so admin-flag changes are observed on the
// next request rather than cached in the session. A hit also refreshes
// the TTL (sliding expiry).
func (s *Service) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	rec, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	user, err := s.storage.GetUser(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// The account is gone; the session is dead too.
			_ = s.sessions.Delete(ctx, token)
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	// Sliding expiry: push the deadline out on activity. A failed
	// refresh is not fatal; the session just keeps its old deadline.
	if err := s.sessions.Set(ctx, token, rec, s.sessionDuration); err != nil {
		s.logger.Warn("session refresh failed", slog.String("error", err.Error()))
	}

	return user, nil
}

// ListUsers returns all registered users
func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// SetUserAdmin grants or revokes the admin flag. Because sessions only
// carry the user ID, the change takes effect on the user's next request.
func (s *Service) SetUserAdmin(ctx context.Context, userID int64, isAdmin bool) error {
	if err := s.storage.SetUserAdmin(ctx, userID, isAdmin); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("updating admin flag: %w", err)
	}
	s.logger.Info("admin flag updated", slog.Int64("user_id", userID), slog.Bool("is_admin", isAdmin))
	return nil
}

// InvalidateSession destroys a session
func (s *Service) InvalidateSession(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// SessionDuration returns the configured session lifetime
func (s *Service) SessionDuration() time.Duration {
	return s.sessionDuration
}

// createSession writes a new session record and returns it. The write
// must be durably acknowledged before the success response goes out.
func (s *Service) createSession(ctx context.Context, user *model.User) (*Session, error) {
	token := generateToken()
	now := s.clock.Now()

	rec := &session.Record{
		UserID:    user.ID,
		CreatedAt: now,
	}

	if err := s.sessions.Set(ctx, token, rec, s.sessionDuration); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	return &Session{
		Token:     token,
		UserID:    user.ID,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}, nil
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
