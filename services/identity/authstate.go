package identity

import "sync"

// AuthEvent is one auth-state notification. FlowID scopes the event to the
// client flow that initiated the credential change; UID is empty on sign-out.
type AuthEvent struct {
	FlowID   string
	UID      string
	SignedIn bool
}

// AuthState is an explicit auth-state event source. Subscribers register a
// callback and receive every subsequent event until they unsubscribe. This
// replaces ambient "current principal" lookups: the principal travels inside
// the event.
type AuthState struct {
	mu   sync.Mutex
	subs map[int]func(AuthEvent)
	next int
}

// NewAuthState creates an empty event source.
func NewAuthState() *AuthState {
	return &AuthState{subs: make(map[int]func(AuthEvent))}
}

// Subscribe registers a callback and returns its unsubscribe handle.
func (s *AuthState) Subscribe(fn func(AuthEvent)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Publish delivers the event to every current subscriber. Callbacks run on
// the publisher's goroutine, outside the lock.
func (s *AuthState) Publish(ev AuthEvent) {
	s.mu.Lock()
	fns := make([]func(AuthEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
