package extract

import (
	"regexp"
	"strings"
)

// DefaultAmenityVocabulary is used when the catalog has no amenity column
// data to derive a vocabulary from.
var DefaultAmenityVocabulary = []string{
	"WiFi", "Pool", "Gym", "Restaurant", "Spa", "AC", "Parking",
	"Room Service", "Breakfast", "Business Center",
}

var amenitySplitRe = regexp.MustCompile(`(?i)\s*(?:,|\band\b|और)\s*`)

// Amenities splits the utterance on comma/"and"/"और" and keeps tokens that
// match the known vocabulary (case-insensitive, substring either direction).
// Unrecognized tokens are dropped silently; no match at all means the slot
// stays unset.
func Amenities(text string, vocabulary []string) ([]string, bool) {
	if len(vocabulary) == 0 {
		vocabulary = DefaultAmenityVocabulary
	}

	var found []string
	seen := make(map[string]struct{})
	for _, token := range amenitySplitRe.Split(text, -1) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		for _, vocab := range vocabulary {
			lv := strings.ToLower(vocab)
			if !strings.Contains(token, lv) && !strings.Contains(lv, token) {
				continue
			}
			if _, dup := seen[vocab]; !dup {
				seen[vocab] = struct{}{}
				found = append(found, vocab)
			}
			break
		}
	}
	return found, len(found) > 0
}
