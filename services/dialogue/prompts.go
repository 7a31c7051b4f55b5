package dialogue

import "hoteldesk/models"

// Prompts follow the Hinglish register of the voice flow end to end; each
// dialogue state has exactly one fixed question.
var prompts = map[models.DialogueState]string{
	models.StateLocation:    "सबसे पहले बताइए — आपको किस शहर या एरिया में होटल चाहिए?",
	models.StateDates:       "Check-in और check-out की dates क्या होंगी?",
	models.StateGuests:      "Adult और बच्चे — कितने लोग जा रहे हैं?",
	models.StateRooms:       "आपको कितने rooms की ज़रूरत होगी?",
	models.StateAmenities:   "कोई specific amenities चाहिए? जैसे WiFi, Pool या Breakfast — नहीं चाहिए तो 'no' बोल दीजिए।",
	models.StateBudget:      "Per night budget क्या रखना चाहेंगे? जैसे 5000 से 10000 रुपये।",
	models.StateStarRating:  "कितने star की property चाहिए?",
	models.StateGuestRating: "Guest rating की कोई minimum requirement? जैसे 4 plus।",
	models.StateName:        "Perfect! Booking शुरू करने से पहले — अपना नाम बता दीजिए।",
	models.StateIdle:        "ये conversation end हो चुकी है। नई booking के लिए फिर से session start कीजिए।",
}

const greetingTemplate = "Hey, welcome to Hotel Support! मैं राज बोल रहा हूँ — super excited हूँ आपकी hotel booking में help करने के लिए! आपका ticket number %s है। "

const clarifyPrefix = "Sorry, मैं समझ नहीं पाया। "

const invalidDatesPrefix = "Check-out की date check-in के बाद होनी चाहिए। "

// PromptFor returns the fixed question for a dialogue state.
func PromptFor(state models.DialogueState) string {
	return prompts[state]
}
