package userRepo

import (
	"poojaghar/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when no
	// document exists.
	GetByID(id string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// MergeSet merges the given fields into the user document ($set with
	// upsert), creating it if absent. Mirrors a merge-flagged document write.
	MergeSet(id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
