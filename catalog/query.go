package catalog

import (
	"sort"
	"strings"

	"hoteldesk/models"
)

// MaxResults caps how many hotels a query returns.
const MaxResults = 10

// Query filters and ranks the catalog against the given criteria. Unset
// criteria fields match everything; an empty result is a valid outcome, not
// an error. Ranking is guest rating descending with price ascending as the
// tiebreak, truncated to MaxResults.
func (c *Catalog) Query(crit models.BookingCriteria) models.SearchResult {
	matched := c.Filter(crit)

	result := models.SearchResult{TotalMatches: len(matched)}
	if len(matched) == 0 {
		return result
	}

	pr := models.PriceRange{Min: matched[0].PricePerNight, Max: matched[0].PricePerNight}
	var ratingSum float64
	for _, h := range matched {
		ratingSum += h.GuestRating
		if h.PricePerNight < pr.Min {
			pr.Min = h.PricePerNight
		}
		if h.PricePerNight > pr.Max {
			pr.Max = h.PricePerNight
		}
	}
	result.PriceRange = &pr
	result.AverageRating = ratingSum / float64(len(matched))

	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	for _, h := range matched {
		result.Hotels = append(result.Hotels, models.RankedHotel{
			HotelRecord:    h,
			PriceCategory:  priceCategory(h.PricePerNight),
			RatingCategory: ratingCategory(h.GuestRating),
		})
	}
	return result
}

// Filter returns every record matching the criteria in rank order, without
// truncation or annotation. The returned pointers borrow catalog records.
func (c *Catalog) Filter(crit models.BookingCriteria) []*models.HotelRecord {
	matched := make([]*models.HotelRecord, 0)
	for i := range c.hotels {
		h := &c.hotels[i]
		if matches(h, crit) {
			matched = append(matched, h)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].GuestRating != matched[j].GuestRating {
			return matched[i].GuestRating > matched[j].GuestRating
		}
		return matched[i].PricePerNight < matched[j].PricePerNight
	})
	return matched
}

func matches(h *models.HotelRecord, crit models.BookingCriteria) bool {
	if crit.Location != "" &&
		!strings.Contains(strings.ToLower(h.Location), strings.ToLower(crit.Location)) {
		return false
	}
	if crit.Adults != nil && h.MaxAdults < *crit.Adults {
		return false
	}
	if crit.Children != nil && h.MaxChildren < *crit.Children {
		return false
	}
	// Room count is advisory only; a record carries a single availability
	// entry, not per-room inventory.
	for _, want := range crit.Amenities {
		if !hasAmenity(h.Amenities, want) {
			return false
		}
	}
	if crit.MinPrice != nil && h.PricePerNight < *crit.MinPrice {
		return false
	}
	if crit.MaxPrice != nil && h.PricePerNight > *crit.MaxPrice {
		return false
	}
	if crit.MinStars != nil && h.Stars < *crit.MinStars {
		return false
	}
	if crit.MaxStars != nil && h.Stars > *crit.MaxStars {
		return false
	}
	if crit.MinRating != nil && h.GuestRating < *crit.MinRating {
		return false
	}
	if crit.MaxRating != nil && h.GuestRating > *crit.MaxRating {
		return false
	}
	return datesCompatible(h, crit)
}

// hasAmenity is intentionally permissive: the requested token only has to
// appear as a substring of some amenity on the record ("wifi" matches
// "Free WiFi").
func hasAmenity(have []string, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" {
		return true
	}
	for _, a := range have {
		if strings.Contains(strings.ToLower(a), want) {
			return true
		}
	}
	return false
}

// datesCompatible treats availability as satisfied unless the record carries
// an explicit window that cannot overlap the requested stay. There is no
// real inventory ledger behind this check.
func datesCompatible(h *models.HotelRecord, crit models.BookingCriteria) bool {
	if crit.CheckIn == nil || crit.CheckOut == nil || h.CheckIn == nil || h.CheckOut == nil {
		return true
	}
	if crit.CheckOut.Before(*h.CheckIn) || crit.CheckIn.After(*h.CheckOut) {
		return false
	}
	return true
}

func priceCategory(price float64) string {
	switch {
	case price < 3000:
		return "budget"
	case price <= 10000:
		return "mid-range"
	default:
		return "premium"
	}
}

func ratingCategory(rating float64) string {
	switch {
	case rating >= 4.5:
		return "excellent"
	case rating >= 4.0:
		return "very good"
	case rating >= 3.0:
		return "good"
	default:
		return "average"
	}
}

// SortRecords orders hotels by one of the catalog columns. Unknown fields
// fall back to guest_rating, unknown orders to desc, matching the advanced
// listing endpoint's contract.
func SortRecords(hotels []*models.HotelRecord, sortBy, order string) []*models.HotelRecord {
	switch sortBy {
	case "hotel_id", "hotel_name", "location", "stars", "guest_rating",
		"price_per_night", "max_adults", "max_children":
	default:
		sortBy = "guest_rating"
	}
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	out := make([]*models.HotelRecord, len(hotels))
	copy(out, hotels)

	less := func(a, b *models.HotelRecord) bool {
		switch sortBy {
		case "hotel_id":
			return a.ID < b.ID
		case "hotel_name":
			return a.Name < b.Name
		case "location":
			return a.Location < b.Location
		case "stars":
			return a.Stars < b.Stars
		case "price_per_night":
			return a.PricePerNight < b.PricePerNight
		case "max_adults":
			return a.MaxAdults < b.MaxAdults
		case "max_children":
			return a.MaxChildren < b.MaxChildren
		default:
			return a.GuestRating < b.GuestRating
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == "asc" {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}
