package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. It is the default
// backend; session state does not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (m *MemoryStore) Create(ctx context.Context, s Session) error {
	if s.SessionID == "" || s.UserID == 0 {
		return fmt.Errorf("session: missing session_id or user_id")
	}
	if !s.ExpiresAt.After(time.Now()) {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[s.SessionID]; exists {
		return fmt.Errorf("session: id already bound to a live session")
	}

	m.sessions[s.SessionID] = s
	return nil
}

// Get drops expired entries lazily; there is no background sweeper.
func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil // not found
	}

	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, sessionID)
		return nil, nil
	}

	return &s, nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
