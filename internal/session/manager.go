package session

import (
	"context"
	"errors"
	"time"
)

// ErrInvalid covers every way a session can fail to resolve: unknown id,
// expired, or rejected by strong protection. Callers only need the one
// answer.
var ErrInvalid = errors.New("session: invalid or expired")

// Manager owns the session lifecycle: it issues opaque identifiers at
// login, resolves them back to user ids on later requests, and destroys
// them at logout.
type Manager struct {
	store      Store
	ttl        time.Duration
	protection bool
}

// NewManager wires a Manager over a Store. When strongProtection is set,
// Resolve rejects — and drops — any session whose client fingerprint no
// longer matches the one captured at login.
func NewManager(store Store, ttl time.Duration, strongProtection bool) *Manager {
	return &Manager{
		store:      store,
		ttl:        ttl,
		protection: strongProtection,
	}
}

// TTL is the absolute lifetime applied to issued sessions.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for userID and returns its identifier.
func (m *Manager) Issue(ctx context.Context, userID int, fingerprint string) (string, error) {
	sessionID, err := GenerateID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	s := Session{
		SessionID:   sessionID,
		UserID:      userID,
		Fingerprint: fingerprint,
		CreatedAt:   now,
		ExpiresAt:   now.Add(m.ttl),
	}

	if err := m.store.Create(ctx, s); err != nil {
		return "", err
	}

	return sessionID, nil
}

// Resolve maps a session identifier back to its user id.
func (m *Manager) Resolve(ctx context.Context, sessionID, fingerprint string) (int, error) {
	if sessionID == "" {
		return 0, ErrInvalid
	}

	s, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if s == nil {
		return 0, ErrInvalid
	}

	if time.Now().After(s.ExpiresAt) {
		_ = m.store.Delete(ctx, sessionID)
		return 0, ErrInvalid
	}

	if m.protection && s.Fingerprint != fingerprint {
		// The binding context changed mid-session. Treat the token as
		// stolen and invalidate it outright.
		_ = m.store.Delete(ctx, sessionID)
		return 0, ErrInvalid
	}

	return s.UserID, nil
}

// Destroy removes the session. Destroying an unknown or already-destroyed
// session is not an error.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return m.store.Delete(ctx, sessionID)
}
