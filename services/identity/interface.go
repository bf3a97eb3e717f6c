package identity

// Principal is an authenticated identity issued by the identity collaborator.
type Principal struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IDToken string `json:"idToken,omitempty"`
}

// Provider is the identity collaborator: account creation, credential
// sign-in, and sign-out. Implementations classify failures into the sentinel
// errors in errors.go so callers can surface them distinctly.
type Provider interface {
	CreateAccount(email, password string) (*Principal, error)
	SignIn(email, password string) (*Principal, error)
	SignOut(uid string) error
}
