package routes

import (
	"net/http"
	"time"

	"poojaghar/handlers"
	"poojaghar/middleware"
	"poojaghar/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterOnboardingRoutes registers the screen-flow endpoints. These are
// public: the flow itself is the client's handle until sign-in completes.
func RegisterOnboardingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.POST("/flow", hb.StartFlowHandler)
		api.GET("/flow/:flowID", hb.GetFlowHandler)
		api.POST("/flow/:flowID/email", hb.SubmitEmailHandler)
		api.POST("/flow/:flowID/password", hb.SubmitPasswordHandler)
		api.POST("/flow/:flowID/profile", hb.CompleteProfileHandler)
		api.POST("/flow/:flowID/signout", hb.SignOutHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.FirebaseAuthMiddleware(utils.FirebaseAuthClient))
		api.GET("", hb.GetProfileHandler)
		api.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterCatalogRoutes registers the home/browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.FirebaseAuthMiddleware(utils.FirebaseAuthClient))
		api.GET("/mantras", hb.ListMantrasHandler)
		api.GET("/items", hb.ListServiceItemsHandler)
		api.GET("/astrologers", hb.ListAstrologersHandler)
		api.GET("/search", hb.SearchCatalogHandler)
	}
}

// RegisterBookingRoutes registers the booking request/history endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.FirebaseAuthMiddleware(utils.FirebaseAuthClient))
		api.POST("", hb.SubmitBookingHandler)
		api.GET("/history", hb.BookingHistoryHandler)
	}

	astro := r.Group("/api/astrologers")
	{
		astro.Use(middleware.FirebaseAuthMiddleware(utils.FirebaseAuthClient))
		astro.POST("/:id/purchase-time", hb.PurchaseTimeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "detail": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterOnboardingRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
