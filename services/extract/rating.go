package extract

import "regexp"

var (
	starsRe = regexp.MustCompile(`(?i)(\d+)\s*-?\s*(?:stars?|सितारा|स्टार)`)
	// "4.5 plus", "rating 4", "4 से ऊपर"
	ratingValueRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:\+|plus|या उससे ऊपर|से ऊपर|or above|rating)`)
	ratingKeywordRe = regexp.MustCompile(`(?i)rating\s*(?:of\s*)?(\d+(?:\.\d+)?)`)
)

// Stars extracts a star-rating threshold (1-5) adjacent to a star keyword,
// or a bare in-range number when that is the whole answer.
func Stars(text string) (int, bool) {
	n, ok := firstInt(starsRe, text)
	if !ok {
		if nums := numbers(text); len(nums) == 1 && nums[0] == float64(int(nums[0])) {
			n, ok = int(nums[0]), true
		}
	}
	if !ok || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

// GuestRating extracts a minimum guest-rating threshold (0.0-5.0) adjacent
// to "rating"/"plus", or a bare in-range number.
func GuestRating(text string) (float64, bool) {
	var val float64
	ok := false
	if m := ratingKeywordRe.FindStringSubmatch(text); m != nil {
		val, ok = parseFloat(m[1])
	}
	if !ok {
		if m := ratingValueRe.FindStringSubmatch(text); m != nil {
			val, ok = parseFloat(m[1])
		}
	}
	if !ok {
		if nums := numbers(text); len(nums) == 1 {
			val, ok = nums[0], true
		}
	}
	if !ok || val < 0 || val > 5 {
		return 0, false
	}
	return val, true
}
