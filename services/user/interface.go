package user

import (
	userRepo "poojaghar/database/repository/user"
	"poojaghar/models"
)

// ProfileService defines business logic for user profile operations.
type ProfileService interface {
	// CreateInitialUser writes the bare account record at sign-up time
	// (email + completion marker off).
	CreateInitialUser(uid, email string) error
	// HasCompletedProfile reports whether a finished profile exists for the UID.
	HasCompletedProfile(uid string) (bool, error)
	// GetProfile retrieves a completed profile, or nil when the account has
	// not finished onboarding.
	GetProfile(uid string) (*models.User, error)
	// SaveProfile validates and persists the onboarding/edit form as a merged
	// write, setting the completion marker.
	SaveProfile(uid, email string, in models.ProfileInput) (*models.User, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo userRepo.UserRepository
}

// FieldErrors maps form field names to inline validation messages. A non-empty
// map blocks submission; no write is attempted.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for field, msg := range e {
		return field + ": " + msg
	}
	return "validation failed"
}
