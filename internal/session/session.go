package session

import (
	"context"
	"time"
)

// Session binds an opaque identifier to a user. It stores identity
// pointers only, never credentials.
type Session struct {
	SessionID   string // opaque unique token, cookie value
	UserID      int    // references a users.Record
	Fingerprint string // client fingerprint captured at login
	CreatedAt   time.Time
	ExpiresAt   time.Time // absolute expiry time
}

// Store defines how sessions are persisted. Implementations must be safe
// for concurrent use and treat Delete as idempotent.
type Store interface {
	// Create stores a new session. It must fail if the identifier is
	// already bound to a live session.
	Create(ctx context.Context, s Session) error

	// Get returns the session or (nil, nil) when unknown or expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	Delete(ctx context.Context, sessionID string) error
}
