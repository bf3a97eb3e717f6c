// models/user.go
package models

import "time"

// User is the document stored in the "users" collection, keyed by the
// Firebase UID. A bare account (created at sign-up, before onboarding
// finishes) carries only Email/CreatedAt with ProfileCompleted false.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Email            string    `bson:"email" json:"email"`
	FullName         string    `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Gender           string    `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth      time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Address          string    `bson:"address,omitempty" json:"address,omitempty"`
	ReferralCode     string    `bson:"referralCode,omitempty" json:"referralCode,omitempty"`
	ProfileCompleted bool      `bson:"profileCompleted" json:"profileCompleted"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasCompletedProfile reports whether the stored record counts as a finished
// profile: the completion marker is set and a full name is present.
func (u *User) HasCompletedProfile() bool {
	return u != nil && u.ProfileCompleted && u.FullName != ""
}

// ProfileInput is the profile-completion form as submitted. Day/month/year
// arrive as discrete selector values.
type ProfileInput struct {
	FullName     string `json:"fullName"`
	Gender       string `json:"gender"`
	Day          string `json:"day"`
	Month        string `json:"month"`
	Year         string `json:"year"`
	Address      string `json:"address"`
	ReferralCode string `json:"referralCode,omitempty"`
}
