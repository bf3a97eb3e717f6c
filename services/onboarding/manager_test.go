package onboarding

import (
	"errors"
	"testing"
	"time"

	"poojaghar/models"
	"poojaghar/services/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	createErr   error
	signInErr   error
	createCalls int
	signInCalls int
	signOutUIDs []string
	nextUID     string
}

func (p *fakeProvider) CreateAccount(email, password string) (*identity.Principal, error) {
	p.createCalls++
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &identity.Principal{UID: p.nextUID, Email: email}, nil
}

func (p *fakeProvider) SignIn(email, password string) (*identity.Principal, error) {
	p.signInCalls++
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return &identity.Principal{UID: p.nextUID, Email: email}, nil
}

func (p *fakeProvider) SignOut(uid string) error {
	p.signOutUIDs = append(p.signOutUIDs, uid)
	return nil
}

type fakeDirectory struct {
	hasProfile   bool
	lookupErr    error
	initialUsers map[string]string
	savedUIDs    []string
}

func (d *fakeDirectory) CreateInitialUser(uid, email string) error {
	if d.initialUsers == nil {
		d.initialUsers = make(map[string]string)
	}
	d.initialUsers[uid] = email
	return nil
}

func (d *fakeDirectory) HasCompletedProfile(uid string) (bool, error) {
	if d.lookupErr != nil {
		return false, d.lookupErr
	}
	return d.hasProfile, nil
}

func (d *fakeDirectory) SaveProfile(uid, email string, in models.ProfileInput) (*models.User, error) {
	d.savedUIDs = append(d.savedUIDs, uid)
	return &models.User{ID: uid, Email: email, FullName: in.FullName, ProfileCompleted: true}, nil
}

// newTestManager wires a manager with a long splash delay so flows sit on
// splash until the test moves them.
func newTestManager(provider *fakeProvider, dir *fakeDirectory) (*Manager, *identity.AuthState) {
	auth := identity.NewAuthState()
	return NewManager(provider, auth, dir, time.Hour), auth
}

// flowAtPassword drives a fresh flow to the password screen.
func flowAtPassword(t *testing.T, mgr *Manager, email string) *Flow {
	t.Helper()
	f := mgr.StartFlow()
	f.apply(SplashExpired{})
	_, err := mgr.SubmitEmail(f.ID, email)
	require.NoError(t, err)
	require.Equal(t, ScreenPassword, f.Screen())
	return f
}

func TestStartFlowBeginsAtSplash(t *testing.T) {
	mgr, _ := newTestManager(&fakeProvider{}, &fakeDirectory{})
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	assert.Equal(t, ScreenSplash, f.Screen())

	got, err := mgr.GetFlow(f.ID)
	require.NoError(t, err)
	assert.Same(t, f, got)
}

func TestSplashTimerAdvancesToWelcome(t *testing.T) {
	auth := identity.NewAuthState()
	mgr := NewManager(&fakeProvider{}, auth, &fakeDirectory{}, 5*time.Millisecond)
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	require.Eventually(t, func() bool {
		return f.Screen() == ScreenWelcome
	}, time.Second, time.Millisecond)
}

func TestGetFlowUnknownID(t *testing.T) {
	mgr, _ := newTestManager(&fakeProvider{}, &fakeDirectory{})
	defer mgr.Shutdown()

	_, err := mgr.GetFlow("nope")
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestSubmitEmailRequiresWelcomeScreen(t *testing.T) {
	mgr, _ := newTestManager(&fakeProvider{}, &fakeDirectory{})
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	_, err := mgr.SubmitEmail(f.ID, "user@example.com")

	var wrongScreen WrongScreenError
	require.ErrorAs(t, err, &wrongScreen)
	assert.Equal(t, ScreenWelcome, wrongScreen.Want)
	assert.Equal(t, ScreenSplash, wrongScreen.Got)
	assert.Equal(t, ScreenSplash, f.Screen())
}

func TestSubmitEmailCarriesAddressForward(t *testing.T) {
	mgr, _ := newTestManager(&fakeProvider{}, &fakeDirectory{})
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	f.apply(SplashExpired{})

	state, err := mgr.SubmitEmail(f.ID, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "password", state.Screen)
	assert.Equal(t, "user@example.com", f.Email())
}

func TestSubmitPasswordValidation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		message  string
	}{
		{"empty password", "", "Password is required"},
		{"short password", "12345", "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{nextUID: "uid-1"}
			mgr, _ := newTestManager(provider, &fakeDirectory{})
			defer mgr.Shutdown()
			f := flowAtPassword(t, mgr, "user@example.com")

			_, err := mgr.SubmitPassword(f.ID, tt.password)

			var validation ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, "password", validation.Field)
			assert.Equal(t, tt.message, validation.Message)
			// Validation failures never reach the identity collaborator.
			assert.Zero(t, provider.createCalls)
			assert.Zero(t, provider.signInCalls)
			assert.Equal(t, ScreenPassword, f.Screen())
		})
	}
}

func TestSubmitPasswordCreatesAccount(t *testing.T) {
	provider := &fakeProvider{nextUID: "uid-new"}
	dir := &fakeDirectory{}
	mgr, _ := newTestManager(provider, dir)
	defer mgr.Shutdown()
	f := flowAtPassword(t, mgr, "new@example.com")

	state, err := mgr.SubmitPassword(f.ID, "secret123")
	require.NoError(t, err)

	// A fresh account always lands on profile, never home.
	assert.Equal(t, "profile", state.Screen)
	assert.Equal(t, 1, provider.createCalls)
	assert.Zero(t, provider.signInCalls)
	assert.Equal(t, "new@example.com", dir.initialUsers["uid-new"])
	assert.Equal(t, "uid-new", f.UID())
}

func TestSubmitPasswordFallsBackToSignIn(t *testing.T) {
	tests := []struct {
		name       string
		hasProfile bool
		wantScreen string
	}{
		{"returning user with profile goes home", true, "home"},
		{"returning user without profile goes to profile", false, "profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{nextUID: "uid-old", createErr: identity.ErrEmailInUse}
			dir := &fakeDirectory{hasProfile: tt.hasProfile}
			mgr, _ := newTestManager(provider, dir)
			defer mgr.Shutdown()
			f := flowAtPassword(t, mgr, "old@example.com")

			state, err := mgr.SubmitPassword(f.ID, "secret123")
			require.NoError(t, err)

			assert.Equal(t, tt.wantScreen, state.Screen)
			assert.Equal(t, 1, provider.createCalls)
			assert.Equal(t, 1, provider.signInCalls)
			// Sign-in never rewrites the account record.
			assert.Empty(t, dir.initialUsers)
		})
	}
}

func TestSubmitPasswordWrongPassword(t *testing.T) {
	provider := &fakeProvider{
		createErr: identity.ErrEmailInUse,
		signInErr: identity.ErrWrongPassword,
	}
	mgr, _ := newTestManager(provider, &fakeDirectory{})
	defer mgr.Shutdown()
	f := flowAtPassword(t, mgr, "old@example.com")

	_, err := mgr.SubmitPassword(f.ID, "wrongpass")
	assert.ErrorIs(t, err, identity.ErrWrongPassword)
	assert.Equal(t, ScreenPassword, f.Screen())
}

func TestSubmitPasswordProfileLookupFailureDefaultsToProfile(t *testing.T) {
	provider := &fakeProvider{nextUID: "uid-old", createErr: identity.ErrEmailInUse}
	dir := &fakeDirectory{hasProfile: true, lookupErr: errors.New("mongo down")}
	mgr, _ := newTestManager(provider, dir)
	defer mgr.Shutdown()
	f := flowAtPassword(t, mgr, "old@example.com")

	state, err := mgr.SubmitPassword(f.ID, "secret123")
	require.NoError(t, err)
	assert.Equal(t, "profile", state.Screen)
}

func TestCompleteProfileAdvancesToHome(t *testing.T) {
	provider := &fakeProvider{nextUID: "uid-new"}
	dir := &fakeDirectory{}
	mgr, _ := newTestManager(provider, dir)
	defer mgr.Shutdown()
	f := flowAtPassword(t, mgr, "new@example.com")

	_, err := mgr.SubmitPassword(f.ID, "secret123")
	require.NoError(t, err)

	state, err := mgr.CompleteProfile(f.ID, models.ProfileInput{FullName: "Asha Rao"})
	require.NoError(t, err)
	assert.Equal(t, "home", state.Screen)
	assert.Equal(t, []string{"uid-new"}, dir.savedUIDs)
}

func TestCompleteProfileRequiresProfileScreen(t *testing.T) {
	mgr, _ := newTestManager(&fakeProvider{}, &fakeDirectory{})
	defer mgr.Shutdown()
	f := flowAtPassword(t, mgr, "user@example.com")

	_, err := mgr.CompleteProfile(f.ID, models.ProfileInput{FullName: "Asha Rao"})

	var wrongScreen WrongScreenError
	require.ErrorAs(t, err, &wrongScreen)
	assert.Equal(t, ScreenProfile, wrongScreen.Want)
}

func TestSignOutLeavesHomeForWelcome(t *testing.T) {
	provider := &fakeProvider{nextUID: "uid-old", createErr: identity.ErrEmailInUse}
	dir := &fakeDirectory{hasProfile: true}
	mgr, _ := newTestManager(provider, dir)
	defer mgr.Shutdown()
	f := flowAtPassword(t, mgr, "old@example.com")

	_, err := mgr.SubmitPassword(f.ID, "secret123")
	require.NoError(t, err)
	require.Equal(t, ScreenHome, f.Screen())

	state, err := mgr.SignOut(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "welcome", state.Screen)
	assert.Equal(t, []string{"uid-old"}, provider.signOutUIDs)
	assert.Empty(t, f.UID())
}

func TestSignOutOutsideHomeKeepsScreen(t *testing.T) {
	provider := &fakeProvider{}
	mgr, _ := newTestManager(provider, &fakeDirectory{})
	defer mgr.Shutdown()
	f := flowAtPassword(t, mgr, "user@example.com")

	state, err := mgr.SignOut(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "password", state.Screen)
	assert.Empty(t, provider.signOutUIDs)
}

func TestAuthEventRoutesSignedInWithProfileHome(t *testing.T) {
	dir := &fakeDirectory{hasProfile: true}
	mgr, auth := newTestManager(&fakeProvider{}, dir)
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	f.apply(SplashExpired{})

	auth.Publish(identity.AuthEvent{FlowID: f.ID, UID: "uid-9", SignedIn: true})
	assert.Equal(t, ScreenHome, f.Screen())
	assert.Equal(t, "uid-9", f.UID())
}

func TestAuthEventDuringSplashDoesNotRoute(t *testing.T) {
	dir := &fakeDirectory{hasProfile: true}
	mgr, auth := newTestManager(&fakeProvider{}, dir)
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	auth.Publish(identity.AuthEvent{FlowID: f.ID, UID: "uid-9", SignedIn: true})

	// The splash screen waits for its timer even when a principal is present.
	assert.Equal(t, ScreenSplash, f.Screen())
	assert.Equal(t, "uid-9", f.UID())
}

func TestAuthEventWithoutProfileStaysPut(t *testing.T) {
	dir := &fakeDirectory{hasProfile: false}
	mgr, auth := newTestManager(&fakeProvider{}, dir)
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	f.apply(SplashExpired{})

	auth.Publish(identity.AuthEvent{FlowID: f.ID, UID: "uid-9", SignedIn: true})
	assert.Equal(t, ScreenWelcome, f.Screen())
}

func TestAuthEventIgnoresOtherFlows(t *testing.T) {
	dir := &fakeDirectory{hasProfile: true}
	mgr, auth := newTestManager(&fakeProvider{}, dir)
	defer mgr.Shutdown()

	f := mgr.StartFlow()
	f.apply(SplashExpired{})

	auth.Publish(identity.AuthEvent{FlowID: "someone-else", UID: "uid-9", SignedIn: true})
	assert.Equal(t, ScreenWelcome, f.Screen())
	assert.Empty(t, f.UID())
}
