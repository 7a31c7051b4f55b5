package models

import "time"

// HotelRecord is one immutable row of the hotel catalog. Records are loaded
// once at startup and never mutated afterwards, so they are safe for
// unsynchronized concurrent reads.
type HotelRecord struct {
	ID            string     `json:"hotel_id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	Stars         int        `json:"stars"`
	GuestRating   float64    `json:"guest_rating"`
	PricePerNight float64    `json:"price_per_night"`
	Amenities     []string   `json:"amenities"`
	MaxAdults     int        `json:"max_adults"`
	MaxChildren   int        `json:"max_children"`
	CheckIn       *time.Time `json:"check_in_date,omitempty"`
	CheckOut      *time.Time `json:"check_out_date,omitempty"`
}

// RankedHotel is a catalog record annotated with fields derived at query
// time. The record pointer is borrowed from the catalog, never copied and
// mutated.
type RankedHotel struct {
	*HotelRecord
	PriceCategory  string `json:"price_category"`
	RatingCategory string `json:"rating_category"`
}

// PriceRange is the min/max price span of a result set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchResult is a ranked, truncated view over the catalog.
type SearchResult struct {
	Hotels        []RankedHotel `json:"hotels"`
	TotalMatches  int           `json:"total_matches"`
	PriceRange    *PriceRange   `json:"price_range,omitempty"`
	AverageRating float64       `json:"average_rating"`
}

// CatalogStats summarizes the full catalog for the stats endpoint.
type CatalogStats struct {
	TotalHotels       int            `json:"total_hotels"`
	AveragePrice      float64        `json:"average_price"`
	AverageRating     float64        `json:"average_rating"`
	PriceRange        PriceRange     `json:"price_range"`
	RatingRange       PriceRange     `json:"rating_range"`
	StarsDistribution map[string]int `json:"stars_distribution"`
	LocationsCount    int            `json:"locations_count"`
}
