package agent_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/catalog"
	"hoteldesk/models"
	"hoteldesk/services/agent"
	"hoteldesk/services/dialogue"
	"hoteldesk/services/session"
)

const agentCSV = `hotel_id,hotel_name,location,stars,guest_rating,amenities,price_per_night,max_adults,max_children
H001,Taj Mahal Palace,Mumbai,5,4.8,"WiFi, Pool",18500,4,2
H002,Sea Breeze Residency,Mumbai,4,4.3,"WiFi, AC",7200,3,2
`

func newTestService(t *testing.T) *agent.DefaultAgentService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hotels.csv")
	require.NoError(t, os.WriteFile(path, []byte(agentCSV), 0o644))
	cat, err := catalog.Load(path)
	require.NoError(t, err)

	store := session.NewMemoryStore(30 * time.Minute)
	return agent.NewDefaultAgentService(store, dialogue.NewMachine(cat))
}

func TestStartSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Regexp(t, `^SR\d{7}$`, resp.TicketNumber)
	assert.Contains(t, resp.Greeting, resp.TicketNumber)

	// Two sessions never share an id or ticket.
	resp2, err := svc.StartSession(ctx, "user-2")
	require.NoError(t, err)
	assert.NotEqual(t, resp.SessionID, resp2.SessionID)
}

func TestPostMessageAndHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	reply, err := svc.PostMessage(ctx, resp.SessionID, "Mumbai me hotel chahiye")
	require.NoError(t, err)
	assert.Contains(t, reply, "Mumbai")

	turns, err := svc.GetHistory(ctx, resp.SessionID)
	require.NoError(t, err)
	// Greeting, user utterance, reply.
	require.Len(t, turns, 3)
	assert.Equal(t, models.RoleAssistant, turns[0].Role)
	assert.Equal(t, models.RoleUser, turns[1].Role)
	assert.Equal(t, "Mumbai me hotel chahiye", turns[1].Text)
	assert.Equal(t, reply, turns[2].Text)
}

func TestConcurrentMessagesAndHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	// History polls while messages are in flight; run with -race.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.PostMessage(ctx, resp.SessionID, "kuch bhi")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.GetHistory(ctx, resp.SessionID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Greeting plus one user and one assistant turn per message.
	turns, err := svc.GetHistory(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Len(t, turns, 1+2*50)
}

func TestPostMessageUnknownSession(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.PostMessage(context.Background(), "does-not-exist", "hello")
	assert.ErrorIs(t, err, session.ErrUnknownSession)
}

func TestEndSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(ctx, resp.SessionID))
	_, err = svc.PostMessage(ctx, resp.SessionID, "Mumbai")
	assert.ErrorIs(t, err, session.ErrUnknownSession)

	// Ending again is a no-op.
	assert.NoError(t, svc.EndSession(ctx, resp.SessionID))
}
