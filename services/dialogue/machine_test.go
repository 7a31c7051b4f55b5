package dialogue_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/catalog"
	"hoteldesk/models"
	"hoteldesk/services/dialogue"
)

const machineCSV = `hotel_id,hotel_name,location,stars,guest_rating,amenities,price_per_night,max_adults,max_children,check_in_date,check_out_date
H001,Taj Mahal Palace,Mumbai,5,4.8,"WiFi, Pool, Gym, Spa",18500,4,2,2025-01-01,2026-12-31
H002,Sea Breeze Residency,Mumbai,4,4.3,"WiFi, AC, Breakfast",7200,3,2,2025-01-01,2026-12-31
H003,The Imperial,Delhi,5,4.7,"WiFi, Pool, Gym",16200,4,2,2025-01-01,2026-12-31
`

func newTestMachine(t *testing.T) *dialogue.Machine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hotels.csv")
	require.NoError(t, os.WriteFile(path, []byte(machineCSV), 0o644))
	cat, err := catalog.Load(path)
	require.NoError(t, err)
	return dialogue.NewMachine(cat)
}

func newTestSession() *models.ConversationSession {
	return &models.ConversationSession{
		SessionID:    "test-session",
		TicketNumber: "SR1234567",
		State:        models.StateGreeting,
	}
}

func TestGreeting(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	require.Equal(t, models.StateGreeting, sess.State)

	greeting := m.Greeting(sess)
	assert.Contains(t, greeting, "SR1234567")
	assert.Contains(t, greeting, dialogue.PromptFor(models.StateLocation))
	assert.Equal(t, models.StateLocation, sess.State)
}

func TestFullConversation(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	m.Greeting(sess)

	reply := m.Advance(sess, "Mumbai me hotel chahiye")
	assert.Contains(t, reply, "Mumbai")
	assert.Equal(t, models.StateDates, sess.State)
	assert.Equal(t, "Mumbai", sess.Criteria.Location)

	reply = m.Advance(sess, "15/12/2025 se 20/12/2025 tak")
	assert.Equal(t, models.StateGuests, sess.State)
	assert.Contains(t, reply, dialogue.PromptFor(models.StateGuests))
	require.NotNil(t, sess.Criteria.CheckIn)
	assert.Equal(t, 15, sess.Criteria.CheckIn.Day())

	m.Advance(sess, "2 adults and 1 child")
	assert.Equal(t, models.StateRooms, sess.State)
	require.NotNil(t, sess.Criteria.Adults)
	assert.Equal(t, 2, *sess.Criteria.Adults)
	require.NotNil(t, sess.Criteria.Children)
	assert.Equal(t, 1, *sess.Criteria.Children)

	m.Advance(sess, "1 room")
	assert.Equal(t, models.StateAmenities, sess.State)

	m.Advance(sess, "WiFi, Pool")
	assert.Equal(t, models.StateBudget, sess.State)
	assert.Equal(t, []string{"WiFi", "Pool"}, sess.Criteria.Amenities)

	m.Advance(sess, "5000 se 20000")
	assert.Equal(t, models.StateStarRating, sess.State)

	m.Advance(sess, "4 star")
	assert.Equal(t, models.StateGuestRating, sess.State)
	require.NotNil(t, sess.Criteria.MinStars)
	assert.Equal(t, 4, *sess.Criteria.MinStars)

	m.Advance(sess, "no")
	assert.Equal(t, models.StateName, sess.State)
	assert.Nil(t, sess.Criteria.MinRating)

	reply = m.Advance(sess, "My name is Rahul Sharma")
	assert.Equal(t, models.StateIdle, sess.State)
	assert.Equal(t, "Rahul Sharma", sess.Criteria.GuestName)
	assert.Contains(t, reply, "Perfect Rahul Sharma")
	assert.Contains(t, reply, "Taj Mahal Palace")
	assert.Contains(t, reply, "1 hotels")
}

func TestUnparseableInputReprompts(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	m.Greeting(sess)

	var replies []string
	for i := 0; i < 3; i++ {
		replies = append(replies, m.Advance(sess, "umm uhh"))
	}
	assert.Equal(t, models.StateLocation, sess.State)
	assert.Equal(t, replies[0], replies[1])
	assert.Equal(t, replies[1], replies[2])
	assert.Contains(t, replies[0], dialogue.PromptFor(models.StateLocation))
	assert.Empty(t, sess.Criteria.Location)
}

func TestSingleDateTokenReprompts(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	m.Greeting(sess)
	m.Advance(sess, "Mumbai")

	reply := m.Advance(sess, "Check-in 20 December")
	assert.Equal(t, models.StateDates, sess.State)
	assert.Contains(t, reply, dialogue.PromptFor(models.StateDates))
	assert.Nil(t, sess.Criteria.CheckIn)
}

func TestInvalidDateOrderReprompts(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	m.Greeting(sess)
	m.Advance(sess, "Delhi")

	reply := m.Advance(sess, "20/12/2025 se 15/12/2025 tak")
	assert.Equal(t, models.StateDates, sess.State)
	assert.Contains(t, reply, dialogue.PromptFor(models.StateDates))
	assert.Nil(t, sess.Criteria.CheckIn)
	assert.Nil(t, sess.Criteria.CheckOut)
}

func TestOptionalSlotSkip(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	sess.State = models.StateAmenities

	m.Advance(sess, "नहीं")
	assert.Equal(t, models.StateBudget, sess.State)
	assert.Empty(t, sess.Criteria.Amenities)

	m.Advance(sess, "no")
	assert.Equal(t, models.StateStarRating, sess.State)
	assert.Nil(t, sess.Criteria.MaxPrice)
}

func TestReviseJumpsBack(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	m.Greeting(sess)
	m.Advance(sess, "Mumbai")
	m.Advance(sess, "15/12/2025 se 20/12/2025")
	assert.Equal(t, models.StateGuests, sess.State)

	reply := m.Advance(sess, "change the city please")
	assert.Equal(t, models.StateLocation, sess.State)
	assert.Contains(t, reply, dialogue.PromptFor(models.StateLocation))

	// The flow re-walks forward from the revised slot.
	m.Advance(sess, "Delhi")
	assert.Equal(t, "Delhi", sess.Criteria.Location)
	assert.Equal(t, models.StateDates, sess.State)
}

func TestIdleSessionRejectsInput(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	sess.State = models.StateIdle

	reply := m.Advance(sess, "book karo")
	assert.Equal(t, dialogue.PromptFor(models.StateIdle), reply)
	assert.Equal(t, models.StateIdle, sess.State)
}

func TestNoResultsApology(t *testing.T) {
	m := newTestMachine(t)
	sess := newTestSession()
	sess.State = models.StateName
	sess.Criteria.Location = "Goa"

	reply := m.Advance(sess, "Priya")
	assert.Equal(t, models.StateIdle, sess.State)
	assert.Contains(t, reply, "Sorry Priya")
	assert.Contains(t, reply, "कोई hotels नहीं मिले")
}
