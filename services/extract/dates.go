package extract

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrAmbiguousDate is returned when fewer than two recognizable date tokens
// are present. The dates slot stays unset and the caller re-prompts.
var ErrAmbiguousDate = errors.New("could not recognize two dates in utterance")

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January, "जनवरी": time.January,
	"february": time.February, "feb": time.February, "फरवरी": time.February, "फ़रवरी": time.February,
	"march": time.March, "mar": time.March, "मार्च": time.March,
	"april": time.April, "apr": time.April, "अप्रैल": time.April,
	"may": time.May, "मई": time.May,
	"june": time.June, "jun": time.June, "जून": time.June,
	"july": time.July, "jul": time.July, "जुलाई": time.July,
	"august": time.August, "aug": time.August, "अगस्त": time.August,
	"september": time.September, "sep": time.September, "सितंबर": time.September,
	"october": time.October, "oct": time.October, "अक्टूबर": time.October,
	"november": time.November, "nov": time.November, "नवंबर": time.November,
	"december": time.December, "dec": time.December, "दिसंबर": time.December,
}

var (
	dayMonthRe *regexp.Regexp
	monthDayRe *regexp.Regexp
	numericRe  = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
)

func init() {
	names := make([]string, 0, len(monthNames))
	for name := range monthNames {
		names = append(names, regexp.QuoteMeta(name))
	}
	// Longest alternative first so "march" wins over "mar".
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	alt := strings.Join(names, "|")

	dayMonthRe = regexp.MustCompile(`(?i)(\d{1,2})(?:st|nd|rd|th)?\s+(` + alt + `)`)
	monthDayRe = regexp.MustCompile(`(?i)(` + alt + `)\s+(\d{1,2})`)
}

type dateToken struct {
	pos int
	t   time.Time
}

// DatePair recognizes two date-like tokens in input order: the first is
// check-in, the second check-out. Day+month-name in either script and
// dd/mm/yyyy forms are accepted. Month-name dates without a year are placed
// in the current year.
func DatePair(text string) (checkIn, checkOut time.Time, err error) {
	tokens := dateTokens(text)
	if len(tokens) < 2 {
		return time.Time{}, time.Time{}, ErrAmbiguousDate
	}
	return tokens[0].t, tokens[1].t, nil
}

func dateTokens(text string) []dateToken {
	year := time.Now().Year()
	var tokens []dateToken
	var claimed [][2]int // spans already consumed by an earlier pattern

	add := func(start, end, day int, month time.Month, yr int) {
		if day < 1 || day > 31 {
			return
		}
		tokens = append(tokens, dateToken{
			pos: start,
			t:   time.Date(yr, month, day, 0, 0, 0, 0, time.UTC),
		})
		claimed = append(claimed, [2]int{start, end})
	}

	for _, m := range numericRe.FindAllStringSubmatchIndex(text, -1) {
		day, _ := strconv.Atoi(text[m[2]:m[3]])
		monthNum, _ := strconv.Atoi(text[m[4]:m[5]])
		y, _ := strconv.Atoi(text[m[6]:m[7]])
		if monthNum < 1 || monthNum > 12 {
			continue
		}
		add(m[0], m[1], day, time.Month(monthNum), y)
	}

	for _, m := range dayMonthRe.FindAllStringSubmatchIndex(text, -1) {
		if overlapsClaimed(claimed, m[0], m[1]) {
			continue
		}
		day, _ := strconv.Atoi(text[m[2]:m[3]])
		month := monthNames[strings.ToLower(text[m[4]:m[5]])]
		add(m[0], m[1], day, month, year)
	}

	for _, m := range monthDayRe.FindAllStringSubmatchIndex(text, -1) {
		// A span matched by the day-first pattern ("20 December") must not
		// also yield a month-first token ("December 2...").
		if overlapsClaimed(claimed, m[0], m[1]) {
			continue
		}
		day, _ := strconv.Atoi(text[m[4]:m[5]])
		month := monthNames[strings.ToLower(text[m[2]:m[3]])]
		add(m[0], m[1], day, month, year)
	}

	sort.Slice(tokens, func(i, j int) bool { return tokens[i].pos < tokens[j].pos })
	return tokens
}

func overlapsClaimed(claimed [][2]int, start, end int) bool {
	for _, span := range claimed {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}
