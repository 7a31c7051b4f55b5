package dialogue

import (
	"fmt"
	"strings"

	"hoteldesk/models"
)

// maxPresented caps how many hotels the spoken summary walks through.
const maxPresented = 3

// RenderResults turns a search outcome into the conversational summary. An
// empty result renders the fixed apology; since slots cannot be revised
// after this point, the caller can only reset the session.
func RenderResults(crit *models.BookingCriteria, result models.SearchResult) string {
	guest := crit.GuestName
	if guest == "" {
		guest = "ji"
	}

	if len(result.Hotels) == 0 {
		return fmt.Sprintf(
			"Sorry %s, %s में आपके criteria के according कोई hotels नहीं मिले। क्या आप different dates या budget के साथ नया session try करना चाहेंगे?",
			guest, crit.Location)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Perfect %s! मैंने आपके लिए %d hotels ढूंढे हैं %s में। ",
		guest, result.TotalMatches, crit.Location)

	shown := result.Hotels
	if len(shown) > maxPresented {
		shown = shown[:maxPresented]
	}
	for _, h := range shown {
		fmt.Fprintf(&b,
			"एक शानदार option है %s, ये एक %d-star property है, guest rating है %.1f/5, और price around %.0f rupees per night है। ",
			h.Name, h.Stars, h.GuestRating, h.PricePerNight)
	}

	fmt.Fprintf(&b,
		"मैंने %s को आपके cart में डाल दिया है — आप आराम से review कर सकते हैं। जब आप ready हों, बस बता दीजिए — मैं तुरंत booking confirm कर दूँगा।",
		shown[0].Name)
	return b.String()
}
