package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/models"
	"hoteldesk/services/session"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := &models.ConversationSession{SessionID: "s1", State: models.StateLocation}
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StateLocation, got.State)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrUnknownSession)
}

func TestMemoryStoreCopiesSessions(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	ctx := context.Background()

	sess := &models.ConversationSession{SessionID: "s1"}
	sess.AddTurn(models.RoleAssistant, "hello")
	require.NoError(t, store.Put(ctx, sess))

	// Mutating the caller's session after Put must not leak into the store.
	sess.AddTurn(models.RoleUser, "later")
	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.Turns, 1)

	// Two readers never share a turn log.
	other, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	got.AddTurn(models.RoleUser, "mine")
	assert.Len(t, other.Turns, 1)
}

func TestMemoryStoreUnknown(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, session.ErrUnknownSession)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := session.NewMemoryStore(-time.Second)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &models.ConversationSession{SessionID: "s1"}))
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, session.ErrUnknownSession)
}

func TestMemoryStorePurgeExpired(t *testing.T) {
	store := session.NewMemoryStore(-time.Second)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &models.ConversationSession{SessionID: "s1"}))
	require.NoError(t, store.Put(ctx, &models.ConversationSession{SessionID: "s2"}))
	assert.Equal(t, 2, store.PurgeExpired())
	assert.Equal(t, 0, store.PurgeExpired())
}
