package extract

import (
	"regexp"
	"strings"
)

// Filler phrases stripped before treating the remainder as the guest name.
var nameFillerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy name is\b`),
	regexp.MustCompile(`(?i)\bi am\b`),
	regexp.MustCompile(`(?i)\bi'm\b`),
	regexp.MustCompile(`(?i)\bmera naam\b`),
	regexp.MustCompile(`मेरा नाम`),
	regexp.MustCompile(`मैं`),
	regexp.MustCompile(`(?i)\b(?:hai|hoon|hu)\b`),
	regexp.MustCompile(`है|हूँ|हूं`),
}

var nameJunkRe = regexp.MustCompile(`[^\p{L}\s]`)

// Name strips known filler phrases and returns the trimmed remainder,
// title-cased, as the guest name.
func Name(text string) (string, bool) {
	s := text
	for _, re := range nameFillerRes {
		s = re.ReplaceAllString(s, " ")
	}
	s = nameJunkRe.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	if len(words) == 0 {
		return "", false
	}
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " "), true
}
