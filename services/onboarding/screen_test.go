package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  Screen
		event Event
		want  Screen
	}{
		{"splash expiry reaches welcome", ScreenSplash, SplashExpired{}, ScreenWelcome},
		{"splash expiry is a no-op elsewhere", ScreenHome, SplashExpired{}, ScreenHome},
		{"email moves welcome to password", ScreenWelcome, EmailSubmitted{Email: "a@b.com"}, ScreenPassword},
		{"email ignored outside welcome", ScreenProfile, EmailSubmitted{Email: "a@b.com"}, ScreenProfile},
		{"new account goes to profile, never home", ScreenPassword, PasswordAccepted{HasProfile: false}, ScreenProfile},
		{"returning account with profile goes home", ScreenPassword, PasswordAccepted{HasProfile: true}, ScreenHome},
		{"password result ignored outside password", ScreenWelcome, PasswordAccepted{HasProfile: true}, ScreenWelcome},
		{"profile completion reaches home", ScreenProfile, ProfileCompleted{}, ScreenHome},
		{"profile completion ignored elsewhere", ScreenWelcome, ProfileCompleted{}, ScreenWelcome},
		{"sign-in with profile routes welcome to home", ScreenWelcome, SignedIn{HasProfile: true}, ScreenHome},
		{"sign-in with profile routes password to home", ScreenPassword, SignedIn{HasProfile: true}, ScreenHome},
		{"sign-in never routes from splash", ScreenSplash, SignedIn{HasProfile: true}, ScreenSplash},
		{"sign-in without profile stays put", ScreenWelcome, SignedIn{HasProfile: false}, ScreenWelcome},
		{"sign-in without profile does not leave profile", ScreenProfile, SignedIn{HasProfile: false}, ScreenProfile},
		{"sign-out leaves home for welcome", ScreenHome, SignedOut{}, ScreenWelcome},
		{"sign-out ignored outside home", ScreenPassword, SignedOut{}, ScreenPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(tt.from, tt.event))
		})
	}
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "splash", ScreenSplash.String())
	assert.Equal(t, "home", ScreenHome.String())
	assert.Equal(t, "unknown", Screen(42).String())
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@sub.domain.in", true},
		{"user+tag@example.co", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@nodot", false},
		{"user name@example.com", false},
		{"user@exa mple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}
