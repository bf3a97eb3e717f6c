package bookingRepo

import "poojaghar/models"

// BookingRepository reads historical bookings. This service never writes the
// bookings collection; records land there through other channels.
type BookingRepository interface {
	// HistoryByUser returns the user's bookings, newest first.
	HistoryByUser(userID string) ([]models.Booking, error)
}
