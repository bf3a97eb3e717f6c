package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Onboarding endpoints
	StartFlowHandler       gin.HandlerFunc
	GetFlowHandler         gin.HandlerFunc
	SubmitEmailHandler     gin.HandlerFunc
	SubmitPasswordHandler  gin.HandlerFunc
	CompleteProfileHandler gin.HandlerFunc
	SignOutHandler         gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Catalog endpoints
	ListMantrasHandler      gin.HandlerFunc
	ListServiceItemsHandler gin.HandlerFunc
	ListAstrologersHandler  gin.HandlerFunc
	SearchCatalogHandler    gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler  gin.HandlerFunc
	BookingHistoryHandler gin.HandlerFunc
	PurchaseTimeHandler   gin.HandlerFunc
}
