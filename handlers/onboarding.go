package handlers

import (
	"errors"
	"net/http"
	"strings"

	"poojaghar/models"
	"poojaghar/services/identity"
	"poojaghar/services/onboarding"
	"poojaghar/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartFlowHandler creates a fresh onboarding flow at the splash screen.
func StartFlowHandler(mgr *onboarding.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := mgr.StartFlow()
		c.JSON(http.StatusCreated, f.Snapshot())
	}
}

// GetFlowHandler returns the current state of a flow.
func GetFlowHandler(mgr *onboarding.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := mgr.GetFlow(c.Param("flowID"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Flow not found"})
			return
		}
		c.JSON(http.StatusOK, f.Snapshot())
	}
}

// SubmitEmailHandler validates the welcome-screen email and advances the flow
// to the password screen.
func SubmitEmailHandler(mgr *onboarding.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		email := strings.TrimSpace(req.Email)
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"field": "email", "error": "Email is required"})
			return
		}
		if !onboarding.ValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"field": "email", "error": "Please enter a valid email address"})
			return
		}

		state, err := mgr.SubmitEmail(c.Param("flowID"), email)
		if err != nil {
			writeFlowError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// SubmitPasswordHandler runs the identity gate for the flow. Account creation
// is attempted first; an already-registered address falls back to sign-in.
func SubmitPasswordHandler(mgr *onboarding.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		state, err := mgr.SubmitPassword(c.Param("flowID"), req.Password)
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrWrongPassword):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password. Please try again."})
			case errors.Is(err, identity.ErrTooManyRequests):
				c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed attempts. Please try again later."})
			case errors.Is(err, identity.ErrWeakPassword):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password is too weak. Please choose a stronger password."})
			case errors.Is(err, identity.ErrInvalidEmail):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address format."})
			default:
				writeFlowError(c, logger, err)
			}
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// CompleteProfileHandler persists the profile form for the flow's signed-in
// user and advances to home.
func CompleteProfileHandler(mgr *onboarding.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var in models.ProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		state, err := mgr.CompleteProfile(c.Param("flowID"), in)
		if err != nil {
			var fieldErrs user.FieldErrors
			if errors.As(err, &fieldErrs) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
				return
			}
			writeFlowError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// SignOutHandler signs the flow's user out and routes the flow back to the
// welcome screen.
func SignOutHandler(mgr *onboarding.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		state, err := mgr.SignOut(c.Param("flowID"))
		if err != nil {
			writeFlowError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// writeFlowError maps the flow manager's error taxonomy to HTTP responses.
func writeFlowError(c *gin.Context, logger *zap.Logger, err error) {
	var wrongScreen onboarding.WrongScreenError
	var validation onboarding.ValidationError

	switch {
	case errors.Is(err, onboarding.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Flow not found"})
	case errors.As(err, &wrongScreen):
		c.JSON(http.StatusConflict, gin.H{"error": wrongScreen.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"field": validation.Field, "error": validation.Message})
	default:
		logger.Error("Onboarding operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed. Please try again."})
	}
}
