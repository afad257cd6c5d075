package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"calbook/config"
	"calbook/database"
	bookingRepo "calbook/database/repository/booking"
	"calbook/handlers"
	"calbook/middleware"
	"calbook/routes"
	"calbook/services/booking"
	"calbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Storage: Mongo when configured, otherwise the volatile in-memory store.
	var repo bookingRepo.BookingRepository
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		mongoRepo := bookingRepo.NewMongoBookingRepo()
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
		}
		repo = mongoRepo
	} else {
		logger.Sugar().Info("main: no DATABASE_URL configured, using in-memory store")
		repo = bookingRepo.NewMemoryBookingRepo()
	}

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// A single store and coordinator instance, constructed once and passed by
	// reference; never recreated per request.
	bookingService := &booking.DefaultBookingService{
		Repo:           repo,
		Coordinator:    booking.NewReservationCoordinator(),
		Cache:          utils.GetCacheClient(),
		CacheTTL:       time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second,
		MaxAdvanceDays: config.AppConfig.MaxAdvanceBookingDays,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
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
