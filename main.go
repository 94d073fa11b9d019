// File: skylane/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skylane/config"
	"skylane/database"
	"skylane/database/repository"
	"skylane/handlers"
	"skylane/middleware"
	"skylane/routes"
	"skylane/services/booking"
	"skylane/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitBookingCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookingRepo := repository.NewMongoBookingRepo()
	catalogRepo := repository.NewMemoryCatalogRepo()

	// Services.
	sessionStore := booking.NewSessionStore(&booking.RedisKV{Client: utils.GetBookingCacheClient()})
	if secs := config.AppConfig.SessionTTLSeconds; secs > 0 {
		sessionStore.TTL = time.Duration(secs) * time.Second
	}
	bookingService := &booking.DefaultBookingFlowService{
		Store:       sessionStore,
		Catalog:     catalogRepo,
		BookingRepo: bookingRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, catalogRepo, logger)

	// Register routes.
	routes.RegisterRoutes(router, bookingHandler)

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
