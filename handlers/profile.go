package handlers

import (
	"errors"
	"net/http"

	"poojaghar/models"
	"poojaghar/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's completed profile.
func GetProfileHandler(profiles user.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		// Auth middleware has set "userID" in context.
		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		profile, err := profiles.GetProfile(userID.(string))
		if err != nil {
			logger.Error("Failed to get user profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
			return
		}
		if profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler re-runs the profile form for an already-onboarded user.
func UpdateProfileHandler(profiles user.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var in models.ProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			logger.Error("Invalid update request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		existing, err := profiles.GetProfile(userID.(string))
		if err != nil {
			logger.Error("Failed to load profile for update", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		if existing == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}

		updated, err := profiles.SaveProfile(userID.(string), existing.Email, in)
		if err != nil {
			var fieldErrs user.FieldErrors
			if errors.As(err, &fieldErrs) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
				return
			}
			logger.Error("Failed to update profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
