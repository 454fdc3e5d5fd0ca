// Package principal resolves who is visiting: a signed-in user, an anonymous
// visitor, or a request whose session source has not answered yet.
package principal

import (
	"context"
	"errors"
)

// User identifies a signed-in account.
type User struct {
	ID          string
	Email       string
	DisplayName string
}

// State is the auth state observed for one request.
type State struct {
	User *User
	// Loading is true when the session source did not settle in time or
	// reported itself unavailable.
	Loading bool
	// Rejected is true when a presented session was refused, so the client
	// cookie is stale.
	Rejected bool
}

// SignedIn reports whether the state settled on a user.
func (s State) SignedIn() bool {
	return !s.Loading && s.User != nil
}

// Anonymous returns the settled state without a user.
func Anonymous() State {
	return State{}
}

// Pending returns the unsettled state.
func Pending() State {
	return State{Loading: true}
}

// SignedInAs returns the settled state for user.
func SignedInAs(user User) State {
	return State{User: &user}
}

var (
	// ErrSessionNotFound reports that no session matches the presented id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired reports that the session outlived its expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrSessionRevoked reports that the session was signed out.
	ErrSessionRevoked = errors.New("session revoked")
	// ErrSessionInvalid reports a malformed or tampered session token.
	ErrSessionInvalid = errors.New("session invalid")
)

// IsRejected reports whether err means the presented session is no longer valid.
func IsRejected(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrSessionRevoked) ||
		errors.Is(err, ErrSessionInvalid)
}

// SessionGateway looks up the user behind a session cookie value. The
// resolver stops waiting when ctx ends; implementations should still honor
// ctx so abandoned lookups do not pile up.
type SessionGateway interface {
	LookupSession(ctx context.Context, sessionID string) (User, error)
}

// SessionGatewayFunc adapts a function to SessionGateway.
type SessionGatewayFunc func(ctx context.Context, sessionID string) (User, error)

// LookupSession calls f.
func (f SessionGatewayFunc) LookupSession(ctx context.Context, sessionID string) (User, error) {
	return f(ctx, sessionID)
}
