package handlers

import (
	"errors"
	"net/http"

	"poojaghar/models"
	"poojaghar/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitBookingHandler validates and acknowledges a pandit booking request.
func SubmitBookingHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		ack, err := svc.SubmitRequest(userID.(string), req)
		if err != nil {
			var validation booking.ValidationError
			if errors.As(err, &validation) {
				c.JSON(http.StatusBadRequest, gin.H{"field": validation.Field, "error": validation.Message})
				return
			}
			logger.Error("Failed to submit booking request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit booking request"})
			return
		}

		c.JSON(http.StatusAccepted, ack)
	}
}

// BookingHistoryHandler returns the authenticated user's past bookings.
func BookingHistoryHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		history, err := svc.History(userID.(string))
		if err != nil {
			logger.Error("Failed to fetch booking history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": history})
	}
}

// PurchaseTimeHandler acknowledges a purchase-time intent for an astrologer.
func PurchaseTimeHandler(svc booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ack, err := svc.PurchaseAstrologerTime(userID.(string), c.Param("id"))
		if err != nil {
			if errors.Is(err, booking.ErrAstrologerNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Astrologer not found"})
				return
			}
			logger.Error("Failed to process purchase-time request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
			return
		}

		c.JSON(http.StatusAccepted, ack)
	}
}
