package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Conversation endpoints.
	StartSession gin.HandlerFunc
	PostMessage  gin.HandlerFunc
	GetHistory   gin.HandlerFunc
	EndSession   gin.HandlerFunc

	// Catalog endpoints.
	SearchHotels       gin.HandlerFunc
	ListHotels         gin.HandlerFunc
	ListHotelsAdvanced gin.HandlerFunc
	GetHotelByID       gin.HandlerFunc
	GetLocations       gin.HandlerFunc
	GetAmenities       gin.HandlerFunc
	GetStats           gin.HandlerFunc
}
