package booking

import (
	"errors"
	"fmt"

	"poojaghar/models"
	"poojaghar/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAstrologerNotFound is returned for purchase-time intents against an
// unknown astrologer.
var ErrAstrologerNotFound = errors.New("booking: astrologer not found")

// ValidationError names the first missing booking-form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// requiredBookingFields pairs each mandatory form field with its inline
// message, in form order. SpecialRequirements is optional.
var requiredBookingFields = []struct {
	name    string
	message string
	value   func(models.BookingRequest) string
}{
	{"ceremonyType", "Please select a ceremony type", func(r models.BookingRequest) string { return r.CeremonyType }},
	{"date", "Please select a date", func(r models.BookingRequest) string { return r.Date }},
	{"time", "Please select a time slot", func(r models.BookingRequest) string { return r.Time }},
	{"duration", "Please specify duration", func(r models.BookingRequest) string { return r.Duration }},
	{"location", "Please enter location", func(r models.BookingRequest) string { return r.Location }},
	{"participants", "Please specify number of participants", func(r models.BookingRequest) string { return r.Participants }},
	{"budget", "Please specify your budget", func(r models.BookingRequest) string { return r.Budget }},
}

// SubmitRequest validates the form and acknowledges it. Intent is logged for
// correlation; nothing is written anywhere.
func (s *DefaultService) SubmitRequest(userID string, req models.BookingRequest) (*models.BookingAck, error) {
	for _, f := range requiredBookingFields {
		if f.value(req) == "" {
			return nil, ValidationError{Field: f.name, Message: f.message}
		}
	}

	requestID := uuid.New().String()
	utils.GetLogger().Info("booking: request received",
		zap.String("requestId", requestID),
		zap.String("userId", userID),
		zap.String("ceremonyType", req.CeremonyType),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.String("duration", req.Duration),
		zap.String("location", req.Location),
		zap.String("participants", req.Participants),
		zap.String("budget", req.Budget))

	return &models.BookingAck{
		RequestID: requestID,
		Message:   "Booking request sent! Online pandits matching your requirements will be notified.",
	}, nil
}

// History reads the user's bookings from the bookings collection.
func (s *DefaultService) History(userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.HistoryByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking history: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// PurchaseAstrologerTime resolves the astrologer for the acknowledgement
// message and logs the intent. Terminal stub.
func (s *DefaultService) PurchaseAstrologerTime(userID, astrologerID string) (*models.BookingAck, error) {
	astrologer, err := s.Catalog.AstrologerByID(astrologerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch astrologer: %w", err)
	}
	if astrologer == nil {
		return nil, ErrAstrologerNotFound
	}

	requestID := uuid.New().String()
	utils.GetLogger().Info("booking: purchase-time intent",
		zap.String("requestId", requestID),
		zap.String("userId", userID),
		zap.String("astrologerId", astrologerID),
		zap.String("astrologer", astrologer.Name))

	return &models.BookingAck{
		RequestID: requestID,
		Message:   fmt.Sprintf("Feature coming soon! You will be able to purchase time to chat with %s", astrologer.Name),
	}, nil
}
