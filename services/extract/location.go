package extract

import "strings"

// cityGazetteer lists the cities the booking flow knows about, with the
// spellings callers actually use over voice transcription. First match wins.
var cityGazetteer = []struct {
	Canonical string
	Aliases   []string
}{
	{"Mumbai", []string{"mumbai", "bombay", "मुंबई"}},
	{"Delhi", []string{"delhi", "दिल्ली"}},
	{"Bangalore", []string{"bangalore", "bengaluru", "बैंगलोर", "बेंगलुरु"}},
	{"Chennai", []string{"chennai", "madras", "चेन्नई"}},
	{"Hyderabad", []string{"hyderabad", "हैदराबाद"}},
	{"Pune", []string{"pune", "पुणे"}},
	{"Kolkata", []string{"kolkata", "calcutta", "कोलकाता"}},
	{"Jaipur", []string{"jaipur", "जयपुर"}},
	{"Goa", []string{"goa", "गोवा"}},
	{"Udaipur", []string{"udaipur", "उदयपुर"}},
}

// Location matches the utterance against the city gazetteer,
// case-insensitive substring, first match wins.
func Location(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, city := range cityGazetteer {
		for _, alias := range city.Aliases {
			if strings.Contains(lower, alias) {
				return city.Canonical, true
			}
		}
	}
	return "", false
}
