package user

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"poojaghar/models"
	"poojaghar/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateInitialUser writes the bare account document created at sign-up:
// email, creation time, and the completion marker off. The write merges so a
// re-registration race cannot clobber an existing profile.
func (s *DefaultProfileService) CreateInitialUser(uid, email string) error {
	fields := bson.M{
		"email":            email,
		"profileCompleted": false,
		"updatedAt":        time.Now(),
	}
	if err := s.Repo.MergeSet(uid, fields); err != nil {
		utils.GetLogger().Error("CreateInitialUser: failed to write account record",
			zap.String("uid", uid), zap.Error(err))
		return err
	}
	return nil
}

// HasCompletedProfile checks the completion marker and full name on the
// stored record. A missing document is simply "no profile".
func (s *DefaultProfileService) HasCompletedProfile(uid string) (bool, error) {
	rec, err := s.Repo.GetByIDWithProjection(uid, bson.M{"profileCompleted": 1, "fullName": 1})
	if err != nil {
		return false, err
	}
	return rec.HasCompletedProfile(), nil
}

// GetProfile retrieves the user's profile. Accounts that never finished
// onboarding yield nil, matching the "bare account" distinction.
func (s *DefaultProfileService) GetProfile(uid string) (*models.User, error) {
	rec, err := s.Repo.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.ProfileCompleted {
		return nil, nil
	}
	return rec, nil
}

// SaveProfile validates the form, assembles the profile fields, and persists
// them as a single merged write with the completion marker set.
func (s *DefaultProfileService) SaveProfile(uid, email string, in models.ProfileInput) (*models.User, error) {
	dob, ferrs := validateProfileInput(in)
	if len(ferrs) > 0 {
		return nil, ferrs
	}

	now := time.Now()
	fields := bson.M{
		"fullName":         strings.TrimSpace(in.FullName),
		"email":            email,
		"gender":           in.Gender,
		"dateOfBirth":      dob,
		"address":          strings.TrimSpace(in.Address),
		"referralCode":     strings.TrimSpace(in.ReferralCode),
		"profileCompleted": true,
		"updatedAt":        now,
	}

	if err := s.Repo.MergeSet(uid, fields); err != nil {
		utils.GetLogger().Error("SaveProfile: merge write failed",
			zap.String("uid", uid), zap.Error(err))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &models.User{
		ID:               uid,
		Email:            email,
		FullName:         strings.TrimSpace(in.FullName),
		Gender:           in.Gender,
		DateOfBirth:      dob,
		Address:          strings.TrimSpace(in.Address),
		ReferralCode:     strings.TrimSpace(in.ReferralCode),
		ProfileCompleted: true,
		UpdatedAt:        now,
	}, nil
}

// validateProfileInput enforces the required-field rules and that the
// day/month/year selectors name a real calendar date (Feb 30 is rejected
// rather than silently normalized).
func validateProfileInput(in models.ProfileInput) (time.Time, FieldErrors) {
	ferrs := FieldErrors{}

	if strings.TrimSpace(in.FullName) == "" {
		ferrs["fullName"] = "Full name is required"
	}
	if in.Gender == "" {
		ferrs["gender"] = "Gender is required"
	}
	if strings.TrimSpace(in.Address) == "" {
		ferrs["address"] = "Address is required"
	}

	if in.Day == "" || in.Month == "" || in.Year == "" {
		ferrs["dateOfBirth"] = "Complete date of birth is required"
		return time.Time{}, ferrs
	}

	dob, ok := parseDateOfBirth(in.Day, in.Month, in.Year)
	if !ok {
		ferrs["dateOfBirth"] = "Enter a valid date of birth"
	}
	if len(ferrs) > 0 {
		return time.Time{}, ferrs
	}
	return dob, nil
}

// parseDateOfBirth builds the date and checks it round-trips: time.Date
// normalizes overflow (Feb 30 becomes Mar 1/2), so a component mismatch means
// the combination never existed.
func parseDateOfBirth(day, month, year string) (time.Time, bool) {
	d, err1 := strconv.Atoi(day)
	m, err2 := strconv.Atoi(month)
	y, err3 := strconv.Atoi(year)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 || y < 1 {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
