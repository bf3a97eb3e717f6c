package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poojaghar/config"
	"poojaghar/database"
	bookingRepoPkg "poojaghar/database/repository/booking"
	catalogRepoPkg "poojaghar/database/repository/catalog"
	userRepoPkg "poojaghar/database/repository/user"
	"poojaghar/handlers"
	"poojaghar/middleware"
	"poojaghar/routes"
	"poojaghar/services/booking"
	"poojaghar/services/catalog"
	"poojaghar/services/identity"
	"poojaghar/services/onboarding"
	"poojaghar/services/user"
	"poojaghar/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	profileService := &user.DefaultProfileService{
		Repo: userRepo,
	}

	catalogService := &catalog.DefaultService{
		Repo: catalogRepo,
	}

	bookingService := &booking.DefaultService{
		Repo:    bookingRepo,
		Catalog: catalogRepo,
	}

	identityProvider, err := identity.NewFirebaseProvider(config.AppConfig.FirebaseAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize identity provider: %v", err)
	}
	authState := identity.NewAuthState()

	splashDelay := time.Duration(config.AppConfig.SplashDelayMs) * time.Millisecond
	flowManager := onboarding.NewManager(identityProvider, authState, profileService, splashDelay)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Onboarding endpoints.
		StartFlowHandler:       handlers.StartFlowHandler(flowManager),
		GetFlowHandler:         handlers.GetFlowHandler(flowManager),
		SubmitEmailHandler:     handlers.SubmitEmailHandler(flowManager),
		SubmitPasswordHandler:  handlers.SubmitPasswordHandler(flowManager),
		CompleteProfileHandler: handlers.CompleteProfileHandler(flowManager),
		SignOutHandler:         handlers.SignOutHandler(flowManager),

		// Profile endpoints.
		GetProfileHandler:    handlers.GetProfileHandler(profileService),
		UpdateProfileHandler: handlers.UpdateProfileHandler(profileService),

		// Catalog endpoints.
		ListMantrasHandler:      handlers.ListMantrasHandler(catalogService),
		ListServiceItemsHandler: handlers.ListServiceItemsHandler(catalogService),
		ListAstrologersHandler:  handlers.ListAstrologersHandler(catalogService),
		SearchCatalogHandler:    handlers.SearchCatalogHandler(catalogService),

		// Booking endpoints.
		SubmitBookingHandler:  handlers.SubmitBookingHandler(bookingService),
		BookingHistoryHandler: handlers.BookingHistoryHandler(bookingService),
		PurchaseTimeHandler:   handlers.PurchaseTimeHandler(bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health checks for /health.
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

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

	flowManager.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
