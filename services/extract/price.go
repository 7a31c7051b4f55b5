package extract

// PriceRange extracts a per-night budget. Two numeric tokens become the
// range with the lower value as min; a single token is read as max with
// min 0. Thousands separators are stripped before parsing.
func PriceRange(text string) (min, max float64, ok bool) {
	nums := numbers(text)
	switch {
	case len(nums) == 0:
		return 0, 0, false
	case len(nums) == 1:
		if nums[0] < 0 {
			return 0, 0, false
		}
		return 0, nums[0], true
	default:
		min, max = nums[0], nums[1]
		if min > max {
			min, max = max, min
		}
		return min, max, true
	}
}
