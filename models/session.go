package models

import "time"

// DialogueState is one position in the fixed slot-filling sequence. The
// order is linear: each successful extraction advances to the next state,
// a failed extraction re-prompts the same state.
type DialogueState string

const (
	StateGreeting    DialogueState = "greeting"
	StateLocation    DialogueState = "location"
	StateDates       DialogueState = "dates"
	StateGuests      DialogueState = "guests"
	StateRooms       DialogueState = "rooms"
	StateAmenities   DialogueState = "amenities"
	StateBudget      DialogueState = "budget"
	StateStarRating  DialogueState = "starRating"
	StateGuestRating DialogueState = "guestRating"
	StateName        DialogueState = "name"
	StateIdle        DialogueState = "idle"
)

// TurnRole identifies who produced a conversation turn.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// Turn is one logged message of a conversation.
type Turn struct {
	Role      TurnRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationSession holds the full dialogue context for one user
// interaction, from trigger to end. Sessions live in the session store only;
// there is no persistence guarantee across restarts.
type ConversationSession struct {
	SessionID    string          `json:"sessionId"`
	UserID       string          `json:"userId,omitempty"`
	TicketNumber string          `json:"ticketNumber"`
	CreatedAt    time.Time       `json:"createdAt"`
	State        DialogueState   `json:"state"`
	Criteria     BookingCriteria `json:"criteria"`
	Turns        []Turn          `json:"turns"`
}

// AddTurn appends a message to the ordered conversation log.
func (s *ConversationSession) AddTurn(role TurnRole, text string) {
	s.Turns = append(s.Turns, Turn{Role: role, Text: text, Timestamp: time.Now()})
}
