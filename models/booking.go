// models/booking.go
package models

import "time"

// BookingRequest is the form-captured pandit booking submission. It is
// validated and acknowledged but never persisted; request intake beyond the
// acknowledgement is out of scope.
type BookingRequest struct {
	CeremonyType        string `json:"ceremonyType"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Duration            string `json:"duration"`
	Location            string `json:"location"`
	Participants        string `json:"participants"`
	Budget              string `json:"budget"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
}

// BookingAck acknowledges a terminal-stub submission. The RequestID exists
// for log correlation only.
type BookingAck struct {
	RequestID string `json:"requestId"`
	Message   string `json:"message"`
}

// Booking is a historical record from the "bookings" collection. This
// application only reads these; they are written by other backends.
type Booking struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Service   string    `bson:"service" json:"service"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"`
	Location  string    `bson:"location" json:"location"`
	Status    string    `bson:"status" json:"status"`
	Amount    string    `bson:"amount" json:"amount"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
