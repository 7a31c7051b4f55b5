// Package dialogue drives the slot-filling booking conversation: a fixed
// linear sequence of questions, one extractor per slot, and a composer that
// renders prompts and search results.
package dialogue

import (
	"errors"
	"fmt"
	"regexp"

	"hoteldesk/catalog"
	"hoteldesk/models"
	"hoteldesk/services/extract"
)

// slotOrder is the fixed collection sequence. A failed extraction re-asks
// the same slot; there is no automatic backtracking, only the explicit
// revise command.
var slotOrder = []models.DialogueState{
	models.StateLocation,
	models.StateDates,
	models.StateGuests,
	models.StateRooms,
	models.StateAmenities,
	models.StateBudget,
	models.StateStarRating,
	models.StateGuestRating,
	models.StateName,
}

var reviseRe = regexp.MustCompile(`(?i)\b(?:revise|change|update|बदल)`)

var reviseTargets = []struct {
	re    *regexp.Regexp
	state models.DialogueState
}{
	{regexp.MustCompile(`(?i)city|location|शहर|जगह`), models.StateLocation},
	{regexp.MustCompile(`(?i)date|dates|तारीख`), models.StateDates},
	{regexp.MustCompile(`(?i)guest|adult|people|लोग`), models.StateGuests},
	{regexp.MustCompile(`(?i)room|कमरे`), models.StateRooms},
	{regexp.MustCompile(`(?i)amenit`), models.StateAmenities},
	{regexp.MustCompile(`(?i)budget|price|रुपये`), models.StateBudget},
	{regexp.MustCompile(`(?i)star|स्टार`), models.StateStarRating},
	{regexp.MustCompile(`(?i)rating`), models.StateGuestRating},
	{regexp.MustCompile(`(?i)name|नाम`), models.StateName},
}

// Machine advances a session one utterance at a time. It is stateless
// itself; all conversation state lives on the session.
type Machine struct {
	catalog *catalog.Catalog
	vocab   []string
}

func NewMachine(cat *catalog.Catalog) *Machine {
	vocab := cat.AmenityVocabulary()
	if len(vocab) == 0 {
		vocab = extract.DefaultAmenityVocabulary
	}
	return &Machine{catalog: cat, vocab: vocab}
}

// Greeting moves a fresh session to the first slot and returns the opening
// message, ticket number included.
func (m *Machine) Greeting(sess *models.ConversationSession) string {
	sess.State = models.StateLocation
	return fmt.Sprintf(greetingTemplate, sess.TicketNumber) + PromptFor(models.StateLocation)
}

// Advance consumes one utterance for the session's current slot and returns
// the outbound reply. On extraction success the criterion is stored and the
// state moves forward; on failure the state stays and the same prompt is
// re-emitted with a clarification prefix.
func (m *Machine) Advance(sess *models.ConversationSession, text string) string {
	if sess.State == models.StateIdle {
		return PromptFor(models.StateIdle)
	}

	if target, ok := reviseTarget(text); ok {
		sess.State = target
		return "ठीक है, " + PromptFor(target)
	}

	switch sess.State {
	case models.StateLocation:
		loc, ok := extract.Location(text)
		if !ok {
			return clarifyPrefix + PromptFor(sess.State)
		}
		sess.Criteria.Location = loc
		m.next(sess)
		return fmt.Sprintf("Great! %s में होटल ढूंढेंगे। ", loc) + PromptFor(sess.State)

	case models.StateDates:
		checkIn, checkOut, err := extract.DatePair(text)
		if err != nil {
			return clarifyPrefix + PromptFor(sess.State)
		}
		if err := sess.Criteria.SetDates(checkIn, checkOut); err != nil {
			if errors.Is(err, models.ErrInvalidDateRange) {
				return invalidDatesPrefix + PromptFor(sess.State)
			}
			return clarifyPrefix + PromptFor(sess.State)
		}

	case models.StateGuests:
		adults, children, ok := extract.Guests(text)
		if !ok {
			return clarifyPrefix + PromptFor(sess.State)
		}
		sess.Criteria.Adults = &adults
		sess.Criteria.Children = &children

	case models.StateRooms:
		rooms, ok := extract.Rooms(text)
		if !ok {
			return clarifyPrefix + PromptFor(sess.State)
		}
		sess.Criteria.Rooms = &rooms

	case models.StateAmenities:
		if !extract.IsSkip(text) {
			amenities, ok := extract.Amenities(text, m.vocab)
			if !ok {
				return clarifyPrefix + PromptFor(sess.State)
			}
			sess.Criteria.Amenities = amenities
		}

	case models.StateBudget:
		if !extract.IsSkip(text) {
			min, max, ok := extract.PriceRange(text)
			if !ok {
				return clarifyPrefix + PromptFor(sess.State)
			}
			sess.Criteria.MinPrice = &min
			sess.Criteria.MaxPrice = &max
		}

	case models.StateStarRating:
		if !extract.IsSkip(text) {
			stars, ok := extract.Stars(text)
			if !ok {
				return clarifyPrefix + PromptFor(sess.State)
			}
			sess.Criteria.MinStars = &stars
		}

	case models.StateGuestRating:
		if !extract.IsSkip(text) {
			rating, ok := extract.GuestRating(text)
			if !ok {
				return clarifyPrefix + PromptFor(sess.State)
			}
			sess.Criteria.MinRating = &rating
		}

	case models.StateName:
		name, ok := extract.Name(text)
		if !ok {
			return clarifyPrefix + PromptFor(sess.State)
		}
		sess.Criteria.GuestName = name
		// All slots filled: run the single catalog query and go terminal.
		result := m.catalog.Query(sess.Criteria)
		sess.State = models.StateIdle
		return RenderResults(&sess.Criteria, result)

	default:
		return clarifyPrefix + PromptFor(models.StateLocation)
	}

	m.next(sess)
	return PromptFor(sess.State)
}

// next moves the slot pointer one step forward in the fixed order.
func (m *Machine) next(sess *models.ConversationSession) {
	for i, state := range slotOrder {
		if state == sess.State {
			if i+1 < len(slotOrder) {
				sess.State = slotOrder[i+1]
			} else {
				sess.State = models.StateIdle
			}
			return
		}
	}
	sess.State = models.StateIdle
}

// reviseTarget recognizes an explicit "revise <slot>" command and returns
// the state to jump back to.
func reviseTarget(text string) (models.DialogueState, bool) {
	if !reviseRe.MatchString(text) {
		return "", false
	}
	for _, t := range reviseTargets {
		if t.re.MatchString(text) {
			return t.state, true
		}
	}
	return "", false
}
