package onboarding

import (
	"errors"
	"fmt"
	"time"

	"poojaghar/models"
	"poojaghar/services/identity"
	"poojaghar/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrFlowNotFound is returned for unknown or expired flow IDs.
var ErrFlowNotFound = errors.New("onboarding: flow not found")

// WrongScreenError reports an operation invoked from a screen it does not
// belong to. The flow is left unchanged.
type WrongScreenError struct {
	Want Screen
	Got  Screen
}

func (e WrongScreenError) Error() string {
	return fmt.Sprintf("onboarding: operation requires the %s screen, flow is on %s", e.Want, e.Got)
}

// ValidationError is a client-side style validation failure, shown inline and
// blocking the step. No collaborator call is made when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// Manager owns all live onboarding flows. Flows are held in memory only —
// screen state is transient by design, so a process restart (like a page
// reload) sends every client back to splash.
type Manager struct {
	flows *flowStore

	identity    identity.Provider
	auth        *identity.AuthState
	profiles    ProfileDirectory
	splashDelay time.Duration
}

// NewManager wires the flow manager to its collaborators. splashDelay is the
// fixed splash-screen duration (3.5s in production, shorter in tests).
func NewManager(provider identity.Provider, auth *identity.AuthState, profiles ProfileDirectory, splashDelay time.Duration) *Manager {
	return &Manager{
		flows:       newFlowStore(),
		identity:    provider,
		auth:        auth,
		profiles:    profiles,
		splashDelay: splashDelay,
	}
}

// StartFlow creates a flow at the splash screen, arms the splash timer, and
// subscribes the flow to auth-state events for its lifetime.
func (m *Manager) StartFlow() *Flow {
	f := &Flow{
		ID:        uuid.New().String(),
		screen:    ScreenSplash,
		createdAt: time.Now(),
	}

	unsubscribe := m.auth.Subscribe(func(ev identity.AuthEvent) {
		m.handleAuthEvent(f, ev)
	})

	// The splash timer fires unconditionally; an already signed-in user is
	// routed onward by the next auth-state event, not by the timer.
	timer := time.AfterFunc(m.splashDelay, func() {
		f.apply(SplashExpired{})
	})

	f.unsubscribe = func() {
		timer.Stop()
		unsubscribe()
	}

	m.flows.put(f)
	return f
}

// GetFlow looks up a live flow.
func (m *Manager) GetFlow(id string) (*Flow, error) {
	f, ok := m.flows.get(id)
	if !ok {
		return nil, ErrFlowNotFound
	}
	return f, nil
}

// handleAuthEvent reacts to auth-state notifications scoped to this flow.
// A present principal triggers a profile lookup: a completed profile routes
// to home, an incomplete one leaves the screen alone (the password step is
// the only path into the profile screen). A cleared principal only matters
// on home.
func (m *Manager) handleAuthEvent(f *Flow, ev identity.AuthEvent) {
	if ev.FlowID != f.ID {
		return
	}

	if !ev.SignedIn {
		f.apply(SignedOut{})
		return
	}

	f.setPrincipal(ev.UID)
	if f.Screen() == ScreenSplash {
		return
	}

	hasProfile, err := m.profiles.HasCompletedProfile(ev.UID)
	if err != nil {
		utils.GetLogger().Error("onboarding: profile lookup failed on auth event",
			zap.String("flowId", f.ID), zap.String("uid", ev.UID), zap.Error(err))
		return
	}
	if hasProfile {
		f.apply(SignedIn{HasProfile: true})
	}
}

// SubmitEmail stores the welcome-screen email and advances to the password
// screen. Format validation happens before this is invoked.
func (m *Manager) SubmitEmail(flowID, email string) (State, error) {
	f, err := m.GetFlow(flowID)
	if err != nil {
		return State{}, err
	}
	if s := f.Screen(); s != ScreenWelcome {
		return State{}, WrongScreenError{Want: ScreenWelcome, Got: s}
	}

	f.apply(EmailSubmitted{Email: email})
	return f.Snapshot(), nil
}

// SubmitPassword runs the identity gate for the carried-over email: account
// creation first, falling back to sign-in when the address is already
// registered. Creation success always reports "no profile yet"; sign-in
// success resolves the completion check to pick home vs profile.
func (m *Manager) SubmitPassword(flowID, password string) (State, error) {
	f, err := m.GetFlow(flowID)
	if err != nil {
		return State{}, err
	}
	if s := f.Screen(); s != ScreenPassword {
		return State{}, WrongScreenError{Want: ScreenPassword, Got: s}
	}

	if password == "" {
		return State{}, ValidationError{Field: "password", Message: "Password is required"}
	}
	if len(password) < 6 {
		return State{}, ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}

	email := f.Email()
	logger := utils.GetLogger()

	principal, err := m.identity.CreateAccount(email, password)
	switch {
	case err == nil:
		if err := m.profiles.CreateInitialUser(principal.UID, principal.Email); err != nil {
			return State{}, fmt.Errorf("failed to create account record: %w", err)
		}
		f.setPrincipal(principal.UID)
		m.auth.Publish(identity.AuthEvent{FlowID: f.ID, UID: principal.UID, SignedIn: true})
		// A freshly created account never has a profile, regardless of any
		// stray data under the same address.
		f.apply(PasswordAccepted{HasProfile: false})
		return f.Snapshot(), nil

	case errors.Is(err, identity.ErrEmailInUse):
		principal, err := m.identity.SignIn(email, password)
		if err != nil {
			return State{}, err
		}

		hasProfile, perr := m.profiles.HasCompletedProfile(principal.UID)
		if perr != nil {
			logger.Error("onboarding: profile check failed after sign-in",
				zap.String("uid", principal.UID), zap.Error(perr))
			hasProfile = false
		}

		f.setPrincipal(principal.UID)
		m.auth.Publish(identity.AuthEvent{FlowID: f.ID, UID: principal.UID, SignedIn: true})
		f.apply(PasswordAccepted{HasProfile: hasProfile})
		return f.Snapshot(), nil

	default:
		return State{}, err
	}
}

// CompleteProfile persists the onboarding profile for the flow's principal
// and advances to home.
func (m *Manager) CompleteProfile(flowID string, in models.ProfileInput) (State, error) {
	f, err := m.GetFlow(flowID)
	if err != nil {
		return State{}, err
	}
	if s := f.Screen(); s != ScreenProfile {
		return State{}, WrongScreenError{Want: ScreenProfile, Got: s}
	}
	uid := f.UID()
	if uid == "" {
		return State{}, errors.New("onboarding: no authenticated user on flow")
	}

	if _, err := m.profiles.SaveProfile(uid, f.Email(), in); err != nil {
		return State{}, err
	}

	f.apply(ProfileCompleted{})
	return f.Snapshot(), nil
}

// SignOut clears the flow's principal with the identity collaborator and
// publishes the sign-out. Only a flow on home moves (back to welcome).
func (m *Manager) SignOut(flowID string) (State, error) {
	f, err := m.GetFlow(flowID)
	if err != nil {
		return State{}, err
	}

	if uid := f.UID(); uid != "" {
		if err := m.identity.SignOut(uid); err != nil {
			return State{}, err
		}
	}

	m.auth.Publish(identity.AuthEvent{FlowID: f.ID, SignedIn: false})
	return f.Snapshot(), nil
}

// Shutdown unsubscribes every flow from the auth-state source and stops any
// pending splash timers.
func (m *Manager) Shutdown() {
	for _, f := range m.flows.all() {
		if f.unsubscribe != nil {
			f.unsubscribe()
		}
	}
}
