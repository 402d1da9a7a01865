package memory

import (
	"context"
	"sync"
	"time"

	"github.com/szabolcsj/weblabor/internal/dependencies/clock"
	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/session"
)

// Store is an in-memory implementation of the session store
type Store struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[string]entry
}

type entry struct {
	rec       session.Record
	expiresAt time.Time
}

// New creates a new in-memory session store
func New(clk clock.Clock) *Store {
	return &Store{
		clock:    clk,
		sessions: make(map[string]entry),
	}
}

// Ensure Store implements the interface
var _ session.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, token string) (*session.Record, error) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrSessionNotFound
	}

	if s.clock.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, model.ErrSessionNotFound
	}

	rec := e.rec
	return &rec, nil
}

func (s *Store) Set(ctx context.Context, token string, rec *session.Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{
		rec:       *rec,
		expiresAt: s.clock.Now().Add(ttl),
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// CleanExpired removes expired sessions (call periodically)
func (s *Store) CleanExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
