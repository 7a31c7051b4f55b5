package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/services/session"
)

func TestUnknownSessionDoesNotRetainLock(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	svc := NewDefaultAgentService(store, nil)

	_, err := svc.PostMessage(context.Background(), "ghost", "hello")
	require.ErrorIs(t, err, session.ErrUnknownSession)

	svc.mu.Lock()
	assert.Empty(t, svc.locks)
	svc.mu.Unlock()
}
