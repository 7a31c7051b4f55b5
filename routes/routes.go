package routes

import (
	"net/http"
	"time"

	"hoteldesk/handlers"
	"hoteldesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", hb.StartSession)
		api.POST("/session/:sessionID/message", hb.PostMessage)
		api.GET("/session/:sessionID/history", hb.GetHistory)
		api.DELETE("/session/:sessionID", hb.EndSession)
	}
}

// RegisterHotelRoutes registers direct catalog query endpoints.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("", hb.ListHotels)
		api.GET("/search", hb.SearchHotels)
		api.GET("/advanced", hb.ListHotelsAdvanced)
		api.GET("/id/:hotelID", hb.GetHotelByID)
	}

	r.GET("/api/locations", hb.GetLocations)
	r.GET("/api/amenities", hb.GetAmenities)
	r.GET("/api/stats", hb.GetStats)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterHealthRoute(r)
}
