package models

import (
	"errors"
	"time"
)

// ErrInvalidDateRange is returned when a check-out date is not strictly
// after the check-in date. The dialogue layer treats it as a re-prompt of
// the dates slot, never as a fatal error.
var ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

// BookingCriteria is the mutable accumulator of search parameters for one
// conversation session. A nil field means the slot is unset; a set field
// always satisfies its range constraint (invalid input is rejected at the
// boundary and the slot stays unset).
type BookingCriteria struct {
	Location  string     `json:"location,omitempty"`
	CheckIn   *time.Time `json:"checkIn,omitempty"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	Adults    *int       `json:"adults,omitempty"`
	Children  *int       `json:"children,omitempty"`
	Rooms     *int       `json:"rooms,omitempty"`
	Amenities []string   `json:"amenities,omitempty"`
	MinPrice  *float64   `json:"minPrice,omitempty"`
	MaxPrice  *float64   `json:"maxPrice,omitempty"`
	MinStars  *int       `json:"minStars,omitempty"`
	MaxStars  *int       `json:"maxStars,omitempty"`
	MinRating *float64   `json:"minRating,omitempty"`
	MaxRating *float64   `json:"maxRating,omitempty"`
	GuestName string     `json:"guestName,omitempty"`
}

// SetDates stores a validated date pair. Both fields stay unset on error.
func (c *BookingCriteria) SetDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}
	c.CheckIn = &checkIn
	c.CheckOut = &checkOut
	return nil
}
