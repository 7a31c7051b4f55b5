// Package catalog holds the in-memory hotel inventory loaded from a CSV
// source and the filter/rank queries over it.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"hoteldesk/models"
	"hoteldesk/utils"
)

const dateLayout = "2006-01-02"

var requiredColumns = []string{
	"hotel_id", "hotel_name", "location", "stars", "guest_rating",
	"amenities", "price_per_night", "max_adults", "max_children",
}

// Catalog is the read-only hotel inventory. Immutable after Load, so queries
// from concurrent requests need no synchronization.
type Catalog struct {
	hotels  []models.HotelRecord
	skipped int
}

// Load reads the hotel catalog from a CSV file. A missing required column is
// fatal (DataFormatError); a row whose numeric fields do not parse or violate
// their range constraint is skipped and counted, not fatal.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog source: %w", err)
	}
	defer f.Close()

	return loadFrom(f, path)
}

func loadFrom(r io.Reader, source string) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &DataFormatError{Source: source, Reason: "empty or unreadable header"}
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &DataFormatError{Source: source, Reason: "missing required column " + name}
		}
	}

	logger := utils.GetLogger().Sugar()
	cat := &Catalog{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			cat.skipped++
			logger.Debugf("catalog: skipping malformed row %d: %v", line, err)
			continue
		}

		rec, err := parseRow(row, col)
		if err != nil {
			cat.skipped++
			logger.Debugf("catalog: skipping row %d: %v", line, err)
			continue
		}
		cat.hotels = append(cat.hotels, *rec)
	}

	logger.Infof("catalog: loaded %d hotels from %s (%d rows skipped)", len(cat.hotels), source, cat.skipped)
	return cat, nil
}

func parseRow(row []string, col map[string]int) (*models.HotelRecord, error) {
	field := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	stars, err := strconv.Atoi(field("stars"))
	if err != nil {
		return nil, fmt.Errorf("bad stars value %q", field("stars"))
	}
	if stars < 1 || stars > 5 {
		return nil, fmt.Errorf("stars %d out of range", stars)
	}

	rating, err := strconv.ParseFloat(field("guest_rating"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad guest_rating value %q", field("guest_rating"))
	}
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("guest_rating %.2f out of range", rating)
	}

	price, err := strconv.ParseFloat(field("price_per_night"), 64)
	if err != nil {
		return nil, fmt.Errorf("bad price_per_night value %q", field("price_per_night"))
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price_per_night %.2f", price)
	}

	maxAdults, err := strconv.Atoi(field("max_adults"))
	if err != nil || maxAdults < 0 {
		return nil, fmt.Errorf("bad max_adults value %q", field("max_adults"))
	}
	maxChildren, err := strconv.Atoi(field("max_children"))
	if err != nil || maxChildren < 0 {
		return nil, fmt.Errorf("bad max_children value %q", field("max_children"))
	}

	rec := &models.HotelRecord{
		ID:            field("hotel_id"),
		Name:          field("hotel_name"),
		Location:      field("location"),
		Stars:         stars,
		GuestRating:   rating,
		PricePerNight: price,
		MaxAdults:     maxAdults,
		MaxChildren:   maxChildren,
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("empty hotel_id")
	}

	for _, a := range strings.Split(field("amenities"), ",") {
		if a = strings.TrimSpace(a); a != "" {
			rec.Amenities = append(rec.Amenities, a)
		}
	}

	// Availability dates are best-effort; unparseable values just leave the
	// record without a window.
	if t, err := time.Parse(dateLayout, field("check_in_date")); err == nil {
		rec.CheckIn = &t
	}
	if t, err := time.Parse(dateLayout, field("check_out_date")); err == nil {
		rec.CheckOut = &t
	}

	return rec, nil
}

// Len returns the number of loaded hotels.
func (c *Catalog) Len() int { return len(c.hotels) }

// SkippedRows returns how many source rows were rejected during load.
func (c *Catalog) SkippedRows() int { return c.skipped }

// ByID returns the hotel with the given id.
func (c *Catalog) ByID(id string) (*models.HotelRecord, bool) {
	for i := range c.hotels {
		if c.hotels[i].ID == id {
			return &c.hotels[i], true
		}
	}
	return nil, false
}

// Locations returns the sorted set of distinct hotel locations.
func (c *Catalog) Locations() []string {
	return c.distinct(func(h *models.HotelRecord) []string { return []string{h.Location} })
}

// AmenityVocabulary returns the sorted set of distinct amenities across the
// catalog. The slot extractor and the amenities endpoint share it.
func (c *Catalog) AmenityVocabulary() []string {
	return c.distinct(func(h *models.HotelRecord) []string { return h.Amenities })
}

func (c *Catalog) distinct(pick func(*models.HotelRecord) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range c.hotels {
		for _, v := range pick(&c.hotels[i]) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Stats summarizes the whole catalog.
func (c *Catalog) Stats() models.CatalogStats {
	stats := models.CatalogStats{
		TotalHotels:       len(c.hotels),
		StarsDistribution: make(map[string]int),
	}
	if len(c.hotels) == 0 {
		return stats
	}

	stats.PriceRange = models.PriceRange{Min: c.hotels[0].PricePerNight, Max: c.hotels[0].PricePerNight}
	stats.RatingRange = models.PriceRange{Min: c.hotels[0].GuestRating, Max: c.hotels[0].GuestRating}
	var priceSum, ratingSum float64
	for i := range c.hotels {
		h := &c.hotels[i]
		priceSum += h.PricePerNight
		ratingSum += h.GuestRating
		if h.PricePerNight < stats.PriceRange.Min {
			stats.PriceRange.Min = h.PricePerNight
		}
		if h.PricePerNight > stats.PriceRange.Max {
			stats.PriceRange.Max = h.PricePerNight
		}
		if h.GuestRating < stats.RatingRange.Min {
			stats.RatingRange.Min = h.GuestRating
		}
		if h.GuestRating > stats.RatingRange.Max {
			stats.RatingRange.Max = h.GuestRating
		}
		stats.StarsDistribution[strconv.Itoa(h.Stars)]++
	}
	stats.AveragePrice = priceSum / float64(len(c.hotels))
	stats.AverageRating = ratingSum / float64(len(c.hotels))
	stats.LocationsCount = len(c.Locations())
	return stats
}
