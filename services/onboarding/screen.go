package onboarding

import "regexp"

// Screen identifies one step of the client onboarding flow. The five values
// form a closed set; anything else is unrepresentable.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenWelcome
	ScreenPassword
	ScreenProfile
	ScreenHome
)

var screenNames = [...]string{"splash", "welcome", "password", "profile", "home"}

func (s Screen) String() string {
	if s < ScreenSplash || s > ScreenHome {
		return "unknown"
	}
	return screenNames[s]
}

// Event is a screen-flow input. The concrete types below are the only
// transitions the flow understands.
type Event interface{ isEvent() }

// SplashExpired fires once the splash delay elapses. It is unconditional:
// an already signed-in user still lands on welcome until the next auth-state
// notification routes them onward.
type SplashExpired struct{}

// EmailSubmitted carries the address entered on the welcome screen.
type EmailSubmitted struct{ Email string }

// PasswordAccepted reports a successful identity-gate pass and whether a
// completed profile already exists for the principal.
type PasswordAccepted struct{ HasProfile bool }

// ProfileCompleted reports a successful profile submission.
type ProfileCompleted struct{}

// SignedIn is an auth-state notification with the profile lookup resolved.
type SignedIn struct{ HasProfile bool }

// SignedOut is an auth-state notification for a cleared principal.
type SignedOut struct{}

func (SplashExpired) isEvent()    {}
func (EmailSubmitted) isEvent()   {}
func (PasswordAccepted) isEvent() {}
func (ProfileCompleted) isEvent() {}
func (SignedIn) isEvent()         {}
func (SignedOut) isEvent()        {}

// Transition is the screen-flow transition function. Events that do not
// apply to the current screen leave it unchanged; there is no rollback and no
// error path. Notable rules:
//   - SignedIn moves to home only when a completed profile exists, and never
//     from splash. A signed-in principal without a profile stays put — the
//     password step is the only path into the profile screen.
//   - SignedOut only matters on home; elsewhere the screen is kept.
func Transition(s Screen, e Event) Screen {
	switch e := e.(type) {
	case SplashExpired:
		if s == ScreenSplash {
			return ScreenWelcome
		}
	case EmailSubmitted:
		if s == ScreenWelcome {
			return ScreenPassword
		}
	case PasswordAccepted:
		if s == ScreenPassword {
			if e.HasProfile {
				return ScreenHome
			}
			return ScreenProfile
		}
	case ProfileCompleted:
		if s == ScreenProfile {
			return ScreenHome
		}
	case SignedIn:
		if s != ScreenSplash && e.HasProfile {
			return ScreenHome
		}
	case SignedOut:
		if s == ScreenHome {
			return ScreenWelcome
		}
	}
	return s
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the welcome-screen check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
