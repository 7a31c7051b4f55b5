package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hoteldesk/catalog"
	"hoteldesk/models"
	"hoteldesk/utils"
)

// HotelHandler exposes direct catalog queries, bypassing the dialogue, for
// programmatic callers.
type HotelHandler struct {
	Catalog *catalog.Catalog
}

func NewHotelHandler(cat *catalog.Catalog) *HotelHandler {
	return &HotelHandler{Catalog: cat}
}

// criteriaFromQuery builds BookingCriteria from URL query parameters.
// Unparseable values are ignored rather than rejected, matching the
// permissive filter semantics of the catalog itself.
func criteriaFromQuery(c *gin.Context) models.BookingCriteria {
	var crit models.BookingCriteria
	crit.Location = c.Query("location")

	if v, err := time.Parse("2006-01-02", c.Query("check_in_date")); err == nil {
		checkIn := v
		crit.CheckIn = &checkIn
	}
	if v, err := time.Parse("2006-01-02", c.Query("check_out_date")); err == nil {
		checkOut := v
		crit.CheckOut = &checkOut
	}
	if v, err := strconv.Atoi(c.Query("adults")); err == nil {
		crit.Adults = &v
	}
	if v, err := strconv.Atoi(c.Query("children")); err == nil {
		crit.Children = &v
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		crit.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		crit.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.Query("min_stars")); err == nil {
		crit.MinStars = &v
	}
	if v, err := strconv.Atoi(c.Query("max_stars")); err == nil {
		crit.MaxStars = &v
	}
	if v, err := strconv.ParseFloat(c.Query("min_rating"), 64); err == nil {
		crit.MinRating = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_rating"), 64); err == nil {
		crit.MaxRating = &v
	}
	if amenities := c.Query("amenities"); amenities != "" {
		for _, tok := range strings.Split(amenities, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				crit.Amenities = append(crit.Amenities, tok)
			}
		}
	}
	return crit
}

// SearchHotels runs a ranked catalog query and returns the annotated result.
func (h *HotelHandler) SearchHotels(c *gin.Context) {
	crit := criteriaFromQuery(c)
	result := h.Catalog.Query(crit)

	message := "Search completed"
	if result.TotalMatches == 0 {
		message = "No hotels matched the given criteria"
	}
	c.JSON(http.StatusOK, gin.H{
		"search_results":  result,
		"search_criteria": crit,
		"message":         message,
	})
}

// ListHotels returns every matching hotel sorted by guest rating descending.
func (h *HotelHandler) ListHotels(c *gin.Context) {
	matched := h.Catalog.Filter(criteriaFromQuery(c))
	c.JSON(http.StatusOK, gin.H{
		"hotels":      deref(matched),
		"total_count": len(matched),
		"sorting":     "guest_rating_desc",
	})
}

// ListHotelsAdvanced supports sorting by any catalog column on top of the
// standard filters.
func (h *HotelHandler) ListHotelsAdvanced(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "guest_rating")
	sortOrder := c.DefaultQuery("sort_order", "desc")

	matched := catalog.SortRecords(h.Catalog.Filter(criteriaFromQuery(c)), sortBy, sortOrder)
	c.JSON(http.StatusOK, gin.H{
		"hotels":      deref(matched),
		"total_count": len(matched),
		"sorting":     sortBy + "_" + sortOrder,
	})
}

// GetHotelByID returns a single hotel.
func (h *HotelHandler) GetHotelByID(c *gin.Context) {
	id := c.Param("hotelID")
	hotel, ok := h.Catalog.ByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "hotel not found", id)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// GetLocations returns the distinct locations in the catalog.
func (h *HotelHandler) GetLocations(c *gin.Context) {
	locations := h.Catalog.Locations()
	c.JSON(http.StatusOK, gin.H{"locations": locations, "count": len(locations)})
}

// GetAmenities returns the distinct amenity vocabulary of the catalog.
func (h *HotelHandler) GetAmenities(c *gin.Context) {
	amenities := h.Catalog.AmenityVocabulary()
	c.JSON(http.StatusOK, gin.H{"amenities": amenities, "count": len(amenities)})
}

// GetStats returns summary statistics over the whole catalog.
func (h *HotelHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Stats())
}

func deref(hotels []*models.HotelRecord) []models.HotelRecord {
	out := make([]models.HotelRecord, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, *h)
	}
	return out
}
