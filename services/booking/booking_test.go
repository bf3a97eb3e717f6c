package booking

import (
	"errors"
	"testing"

	"poojaghar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (r *fakeBookingRepo) HistoryByUser(userID string) ([]models.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bookings, nil
}

type fakeAstrologerSource struct {
	astrologers map[string]models.Astrologer
}

func (r *fakeAstrologerSource) AllMantras() ([]models.Mantra, error)           { return nil, nil }
func (r *fakeAstrologerSource) AllServiceItems() ([]models.ServiceItem, error) { return nil, nil }
func (r *fakeAstrologerSource) AllAstrologers() ([]models.Astrologer, error)   { return nil, nil }

func (r *fakeAstrologerSource) AstrologerByID(id string) (*models.Astrologer, error) {
	if a, ok := r.astrologers[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		CeremonyType: "Griha Pravesh",
		Date:         "2026-10-02",
		Time:         "09:00",
		Duration:     "3 hours",
		Location:     "Pune",
		Participants: "12",
		Budget:       "5000",
	}
}

func TestSubmitRequestAcknowledges(t *testing.T) {
	svc := &DefaultService{Repo: &fakeBookingRepo{}, Catalog: &fakeAstrologerSource{}}

	ack, err := svc.SubmitRequest("uid-1", validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, ack.RequestID)
	assert.Equal(t, "Booking request sent! Online pandits matching your requirements will be notified.", ack.Message)
}

func TestSubmitRequestRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.BookingRequest)
		field   string
		message string
	}{
		{"missing ceremony", func(r *models.BookingRequest) { r.CeremonyType = "" }, "ceremonyType", "Please select a ceremony type"},
		{"missing date", func(r *models.BookingRequest) { r.Date = "" }, "date", "Please select a date"},
		{"missing time", func(r *models.BookingRequest) { r.Time = "" }, "time", "Please select a time slot"},
		{"missing duration", func(r *models.BookingRequest) { r.Duration = "" }, "duration", "Please specify duration"},
		{"missing location", func(r *models.BookingRequest) { r.Location = "" }, "location", "Please enter location"},
		{"missing participants", func(r *models.BookingRequest) { r.Participants = "" }, "participants", "Please specify number of participants"},
		{"missing budget", func(r *models.BookingRequest) { r.Budget = "" }, "budget", "Please specify your budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &DefaultService{Repo: &fakeBookingRepo{}, Catalog: &fakeAstrologerSource{}}

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.SubmitRequest("uid-1", req)

			var validation ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestSubmitRequestSpecialRequirementsOptional(t *testing.T) {
	svc := &DefaultService{Repo: &fakeBookingRepo{}, Catalog: &fakeAstrologerSource{}}

	req := validRequest()
	req.SpecialRequirements = ""
	_, err := svc.SubmitRequest("uid-1", req)
	assert.NoError(t, err)
}

func TestHistory(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b2", UserID: "uid-1", Service: "Satyanarayan Puja", Status: "completed"},
		{ID: "b1", UserID: "uid-1", Service: "Griha Pravesh", Status: "completed"},
	}}
	svc := &DefaultService{Repo: repo, Catalog: &fakeAstrologerSource{}}

	history, err := svc.History("uid-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "b2", history[0].ID)
}

func TestHistoryEmptyIsNotNil(t *testing.T) {
	svc := &DefaultService{Repo: &fakeBookingRepo{}, Catalog: &fakeAstrologerSource{}}

	history, err := svc.History("uid-1")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistoryPropagatesFetchError(t *testing.T) {
	svc := &DefaultService{
		Repo:    &fakeBookingRepo{err: errors.New("mongo down")},
		Catalog: &fakeAstrologerSource{},
	}

	_, err := svc.History("uid-1")
	assert.Error(t, err)
}

func TestPurchaseAstrologerTime(t *testing.T) {
	source := &fakeAstrologerSource{astrologers: map[string]models.Astrologer{
		"a1": {ID: "a1", Name: "Pandit Sharma", Specialization: "Vedic astrology"},
	}}
	svc := &DefaultService{Repo: &fakeBookingRepo{}, Catalog: source}

	ack, err := svc.PurchaseAstrologerTime("uid-1", "a1")
	require.NoError(t, err)
	assert.NotEmpty(t, ack.RequestID)
	assert.Equal(t, "Feature coming soon! You will be able to purchase time to chat with Pandit Sharma", ack.Message)
}

func TestPurchaseAstrologerTimeUnknownID(t *testing.T) {
	svc := &DefaultService{Repo: &fakeBookingRepo{}, Catalog: &fakeAstrologerSource{}}

	_, err := svc.PurchaseAstrologerTime("uid-1", "missing")
	assert.ErrorIs(t, err, ErrAstrologerNotFound)
}
