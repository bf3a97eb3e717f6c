package identity

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// Failure kinds surfaced by the identity collaborator. Handlers map each to a
// distinct inline message; anything unclassified stays a generic failure.
var (
	ErrEmailInUse      = errors.New("identity: email already in use")
	ErrWrongPassword   = errors.New("identity: wrong password or invalid credential")
	ErrTooManyRequests = errors.New("identity: too many attempts")
	ErrWeakPassword    = errors.New("identity: weak password")
	ErrInvalidEmail    = errors.New("identity: invalid email")
)

// classify maps an Identity Toolkit error onto a sentinel. The API reports
// failure kinds as upper-snake markers in the error message, sometimes with a
// trailing explanation ("WEAK_PASSWORD : Password should be ...").
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	msg := apiErr.Message
	switch {
	case strings.Contains(msg, "EMAIL_EXISTS"):
		return ErrEmailInUse
	case strings.Contains(msg, "INVALID_PASSWORD"),
		strings.Contains(msg, "INVALID_LOGIN_CREDENTIALS"),
		strings.Contains(msg, "EMAIL_NOT_FOUND"):
		return ErrWrongPassword
	case strings.Contains(msg, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return ErrTooManyRequests
	case strings.Contains(msg, "WEAK_PASSWORD"):
		return ErrWeakPassword
	case strings.Contains(msg, "INVALID_EMAIL"):
		return ErrInvalidEmail
	}
	return err
}
