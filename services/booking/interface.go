package booking

import (
	bookingRepo "poojaghar/database/repository/booking"
	catalogRepo "poojaghar/database/repository/catalog"
	"poojaghar/models"
)

// Service covers the booking surface: the terminal request/purchase stubs and
// the read-only history.
type Service interface {
	// SubmitRequest validates a pandit booking form and acknowledges it. The
	// request is logged, never persisted; matching and notification happen
	// elsewhere.
	SubmitRequest(userID string, req models.BookingRequest) (*models.BookingAck, error)
	// History returns the user's past bookings, newest first.
	History(userID string) ([]models.Booking, error)
	// PurchaseAstrologerTime acknowledges a purchase-time intent for the
	// given astrologer. Terminal stub: no state change.
	PurchaseAstrologerTime(userID, astrologerID string) (*models.BookingAck, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo    bookingRepo.BookingRepository
	Catalog catalogRepo.CatalogRepository
}
