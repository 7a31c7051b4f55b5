package extract

import "regexp"

var (
	adultsRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:adults?|persons?|people|log|लोग|व्यस्क)`)
	childrenRe = regexp.MustCompile(`(?i)(\d+)\s*(?:child(?:ren)?|kids?|bacche|बच्चे|बच्चा)`)
	roomsRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:rooms?|kamre|कमरे|कमरा)`)
)

// Adults extracts the first integer adjacent to an adult/person keyword.
func Adults(text string) (int, bool) {
	return firstInt(adultsRe, text)
}

// Children extracts the first integer adjacent to a child keyword.
func Children(text string) (int, bool) {
	return firstInt(childrenRe, text)
}

// Guests parses an adults+children utterance. Children defaults to 0 when
// only the adult count is given. A bare single number ("2") is read as the
// adult count, since the question asked for it directly — but a number
// already bound to a child or room keyword is never reinterpreted as the
// adult count.
func Guests(text string) (adults, children int, ok bool) {
	adults, ok = Adults(text)
	if !ok && !childrenRe.MatchString(text) && !roomsRe.MatchString(text) {
		if nums := numbers(text); len(nums) == 1 && nums[0] == float64(int(nums[0])) {
			adults, ok = int(nums[0]), true
		}
	}
	if !ok {
		return 0, 0, false
	}
	children, _ = Children(text)
	return adults, children, true
}

// Rooms extracts a positive room count, accepting a bare number as the
// direct answer to the rooms question unless it belongs to an adult or
// child keyword.
func Rooms(text string) (int, bool) {
	n, ok := firstInt(roomsRe, text)
	if !ok && !adultsRe.MatchString(text) && !childrenRe.MatchString(text) {
		if nums := numbers(text); len(nums) == 1 && nums[0] == float64(int(nums[0])) {
			n, ok = int(nums[0]), true
		}
	}
	if !ok || n < 1 {
		return 0, false
	}
	return n, true
}
