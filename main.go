// File: hoteldesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoteldesk/catalog"
	"hoteldesk/config"
	"hoteldesk/handlers"
	"hoteldesk/middleware"
	"hoteldesk/routes"
	"hoteldesk/services/agent"
	"hoteldesk/services/dialogue"
	"hoteldesk/services/session"
	"hoteldesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	cat, err := catalog.Load(config.AppConfig.CatalogCSV)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load hotel catalog from %q: %v", config.AppConfig.CatalogCSV, err)
	}

	// Pick the session store backend.
	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	var store session.Store
	if config.AppConfig.SessionStore == "memory" {
		memStore := session.NewMemoryStore(ttl)
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				memStore.PurgeExpired()
			}
		}()
		store = memStore
		logger.Sugar().Info("main: using in-memory session store")
	} else {
		utils.InitSessionCache()
		client := utils.GetSessionCacheClient()
		utils.StartHealthMonitor(client)
		store = session.NewRedisStore(client, ttl)
		logger.Sugar().Infof("main: using redis session store at %s", config.AppConfig.RedisAddr)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	machine := dialogue.NewMachine(cat)
	agentService := agent.NewDefaultAgentService(store, machine)

	chatHandler := handlers.NewChatHandler(agentService)
	hotelHandler := handlers.NewHotelHandler(cat)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Conversation endpoints.
		StartSession: chatHandler.StartSession,
		PostMessage:  chatHandler.PostMessage,
		GetHistory:   chatHandler.GetHistory,
		EndSession:   chatHandler.EndSession,

		// Catalog endpoints.
		ListHotels:         hotelHandler.ListHotels,
		SearchHotels:       hotelHandler.SearchHotels,
		ListHotelsAdvanced: hotelHandler.ListHotelsAdvanced,
		GetHotelByID:       hotelHandler.GetHotelByID,
		GetLocations:       hotelHandler.GetLocations,
		GetAmenities:       hotelHandler.GetAmenities,
		GetStats:           hotelHandler.GetStats,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
