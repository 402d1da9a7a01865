// Package session defines the server-side session store: a durable
// key-value mapping from opaque session token to the owning user's id,
// with a TTL enforced by the backing store.
package session

import (
	"context"
	"time"
)

// Record is the stored session payload. It carries only the user's id;
// the user itself is re-read from storage on every request so that role
// changes take effect immediately.
type Record struct {
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions keyed by token. Set with a fresh TTL is also the
// refresh operation for sliding expiry. Get returns
// model.ErrSessionNotFound for missing or expired tokens.
type Store interface {
	Get(ctx context.Context, token string) (*Record, error)
	Set(ctx context.Context, token string, rec *Record, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
