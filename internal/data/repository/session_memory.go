package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"owner-admin/internal/data/entity"
)

// MemorySessionRepository keeps sessions in a mutex-guarded map keyed by
// token. It mirrors the expiry and revocation semantics of the pgx store.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]entity.Session),
	}
}

func (m *MemorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.Token.String()] = *session
	return nil
}

func (m *MemorySessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	if session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}

	return &session, nil
}

func (m *MemorySessionRepository) Revoke(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session not found or already revoked")
	}

	now := time.Now()
	session.RevokedAt = &now
	m.sessions[token] = session

	return nil
}

func (m *MemorySessionRepository) RevokeAllUserSessions(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for token, session := range m.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
			m.sessions[token] = session
		}
	}

	return nil
}

func (m *MemorySessionRepository) CleanExpiredSessions(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	for token, session := range m.sessions {
		if session.ExpiresAt.Before(cutoff) {
			delete(m.sessions, token)
		}
	}

	return nil
}
