package dialogue_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hoteldesk/models"
	"hoteldesk/services/dialogue"
)

func rankedHotel(name string, stars int, rating, price float64) models.RankedHotel {
	return models.RankedHotel{
		HotelRecord: &models.HotelRecord{
			Name:          name,
			Stars:         stars,
			GuestRating:   rating,
			PricePerNight: price,
		},
	}
}

func TestRenderResultsMentionsEveryPresentedHotel(t *testing.T) {
	crit := &models.BookingCriteria{Location: "Mumbai", GuestName: "Rahul"}
	result := models.SearchResult{
		Hotels: []models.RankedHotel{
			rankedHotel("Taj Mahal Palace", 5, 4.8, 18500),
			rankedHotel("Sea Breeze Residency", 4, 4.3, 7200),
			rankedHotel("Marine Drive Inn", 3, 3.9, 3400),
		},
		TotalMatches: 3,
	}

	text := dialogue.RenderResults(crit, result)
	for _, h := range result.Hotels {
		assert.Equal(t, 1, strings.Count(text, "option है "+h.Name),
			"each presented hotel is described exactly once")
	}
	assert.Contains(t, text, "3 hotels")
	assert.Contains(t, text, "Rahul")
	assert.Contains(t, text, "Mumbai")
}

func TestRenderResultsCapsPresentation(t *testing.T) {
	crit := &models.BookingCriteria{Location: "Delhi", GuestName: "Priya"}
	result := models.SearchResult{
		Hotels: []models.RankedHotel{
			rankedHotel("A", 5, 4.9, 9000),
			rankedHotel("B", 5, 4.8, 8000),
			rankedHotel("C", 4, 4.5, 7000),
			rankedHotel("D", 4, 4.2, 6000),
		},
		TotalMatches: 7,
	}

	text := dialogue.RenderResults(crit, result)
	assert.Contains(t, text, "7 hotels")
	assert.NotContains(t, text, "option है D,")
}

func TestRenderResultsEmpty(t *testing.T) {
	crit := &models.BookingCriteria{Location: "Goa", GuestName: "Amit"}
	text := dialogue.RenderResults(crit, models.SearchResult{})

	assert.Contains(t, text, "Sorry Amit")
	assert.Contains(t, text, "Goa")
}

func TestRenderResultsFallbackGuestName(t *testing.T) {
	crit := &models.BookingCriteria{Location: "Pune"}
	result := models.SearchResult{
		Hotels:       []models.RankedHotel{rankedHotel("Deccan Gateway", 4, 4.2, 5600)},
		TotalMatches: 1,
	}

	assert.Contains(t, dialogue.RenderResults(crit, result), "Perfect ji")
}
