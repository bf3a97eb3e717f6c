package onboarding

import (
	"sync"
	"time"

	"poojaghar/models"
	"poojaghar/utils"

	"go.uber.org/zap"
)

// Flow holds one client's transient onboarding state: the current screen and
// the email carried over from the welcome step. Nothing here is persisted; a
// new flow always starts at splash.
type Flow struct {
	ID string

	mu     sync.Mutex
	screen Screen
	email  string
	uid    string

	createdAt   time.Time
	unsubscribe func()
}

// Screen returns the current screen.
func (f *Flow) Screen() Screen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.screen
}

// Email returns the carried-over welcome-screen email.
func (f *Flow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// UID returns the signed-in principal's UID, or "" before sign-in.
func (f *Flow) UID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uid
}

// apply runs the transition function and records event payloads (email, uid).
// It returns the resulting screen.
func (f *Flow) apply(e Event) Screen {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev := f.screen
	f.screen = Transition(f.screen, e)

	switch ev := e.(type) {
	case EmailSubmitted:
		if prev == ScreenWelcome {
			f.email = ev.Email
		}
	case SignedOut:
		f.uid = ""
	}

	if prev != f.screen {
		utils.GetLogger().Debug("onboarding: screen transition",
			zap.String("flowId", f.ID),
			zap.String("from", prev.String()),
			zap.String("to", f.screen.String()))
	}
	return f.screen
}

// setPrincipal records the signed-in principal on the flow.
func (f *Flow) setPrincipal(uid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uid = uid
}

// State is a read-only snapshot of the flow for API responses.
type State struct {
	FlowID string `json:"flowId"`
	Screen string `json:"screen"`
	Email  string `json:"email,omitempty"`
}

// Snapshot returns the flow's current state.
func (f *Flow) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{FlowID: f.ID, Screen: f.screen.String(), Email: f.email}
}

// ProfileDirectory is the slice of the user service the flow manager needs:
// the initial document written at account creation and the completion check
// that routes sign-ins.
type ProfileDirectory interface {
	CreateInitialUser(uid, email string) error
	HasCompletedProfile(uid string) (bool, error)
	SaveProfile(uid, email string, in models.ProfileInput) (*models.User, error)
}
