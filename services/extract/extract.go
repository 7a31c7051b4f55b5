// Package extract turns free-text utterances into typed slot values for the
// booking dialogue. All functions are pure and stateless; input may mix
// English and Hindi (Latin or Devanagari script) and contain filler words.
// A value that cannot be parsed is reported as "no match", never as a panic:
// callers re-ask the same slot.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// skipRe matches utterances that decline an optional slot outright
// ("no", "nahi", "koi nahi", "skip", "नहीं").
var skipRe = regexp.MustCompile(`(?i)^\s*(?:no|none|nope|nahi|nahin|koi nahi|skip|नहीं|कोई नहीं)\s*[.!]?\s*$`)

// IsSkip reports whether the utterance declines to fill an optional slot.
func IsSkip(text string) bool {
	return skipRe.MatchString(text)
}

// numbers returns every numeric token in input order, thousands separators
// stripped.
func numbers(text string) []float64 {
	var out []float64
	for _, tok := range numberRe.FindAllString(text, -1) {
		n, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func parseFloat(tok string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func firstInt(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}
