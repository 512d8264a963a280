package repository

import (
	"context"
	"testing"
	"time"

	"owner-admin/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSession(userID int64, ttl time.Duration) *entity.Session {
	return &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}
}

func TestMemorySessionLifecycle(t *testing.T) {
	store := NewMemorySessionRepository()
	ctx := context.Background()

	session := newSession(7, time.Hour)
	require.NoError(t, store.Create(ctx, session))

	found, err := store.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, int64(7), found.UserID)

	// Unknown token yields no session, not an error.
	found, err = store.FindValidSession(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, found)

	require.NoError(t, store.Revoke(ctx, session.Token.String()))

	found, err = store.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	require.Nil(t, found)

	require.Error(t, store.Revoke(ctx, session.Token.String()))
}

func TestMemorySessionExpiry(t *testing.T) {
	store := NewMemorySessionRepository()
	ctx := context.Background()

	expired := newSession(7, -time.Minute)
	require.NoError(t, store.Create(ctx, expired))

	found, err := store.FindValidSession(ctx, expired.Token.String())
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestMemorySessionRevokeAllForUser(t *testing.T) {
	store := NewMemorySessionRepository()
	ctx := context.Background()

	first := newSession(7, time.Hour)
	second := newSession(7, time.Hour)
	other := newSession(8, time.Hour)
	for _, s := range []*entity.Session{first, second, other} {
		require.NoError(t, store.Create(ctx, s))
	}

	require.NoError(t, store.RevokeAllUserSessions(ctx, 7))

	for _, token := range []string{first.Token.String(), second.Token.String()} {
		found, err := store.FindValidSession(ctx, token)
		require.NoError(t, err)
		require.Nil(t, found)
	}

	found, err := store.FindValidSession(ctx, other.Token.String())
	require.NoError(t, err)
	require.NotNil(t, found)
}

func TestMemorySessionCleanExpired(t *testing.T) {
	store := NewMemorySessionRepository()
	ctx := context.Background()

	stale := newSession(7, -8*24*time.Hour)
	fresh := newSession(7, time.Hour)
	require.NoError(t, store.Create(ctx, stale))
	require.NoError(t, store.Create(ctx, fresh))

	require.NoError(t, store.CleanExpiredSessions(ctx))

	found, err := store.FindValidSession(ctx, fresh.Token.String())
	require.NoError(t, err)
	require.NotNil(t, found)
}
