// Package session holds the client's authentication and theme state.
//
// State is an immutable value: every mutation is a pure transition function
// that takes a State and returns a new one. The process-wide [Store] applies
// transitions under a lock and fans the resulting snapshot out to
// subscribers, so screens never mutate state directly.
package session

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/logilink/logilink-client/models"
)

// State is the authentication state for the current device/user.
//
// Invariant: the four identity fields (User, AccessToken, RefreshToken and
// the derived Authenticated flag) change together, atomically, in a single
// transition. There is no reachable state with a user but no token or vice
// versa.
type State struct {
	// User is the identity record, nil when anonymous.
	User *models.User

	// AccessToken and RefreshToken are opaque strings issued at login.
	AccessToken  string
	RefreshToken string

	// Loading is set while a verify call is in flight. Never persisted.
	Loading bool

	// LastError is the most recent user-facing failure message, empty
	// when clear. Never persisted.
	LastError string
}

// Authenticated reports whether the session is logged in: true iff both
// the user record and the access token are present.
func (s State) Authenticated() bool {
	return s.User != nil && s.AccessToken != ""
}

// WithIdentity returns a state with all identity fields set from the
// payload in one step. Loading and LastError are reset: a successful login
// supersedes any earlier failure.
func WithIdentity(s State, identity models.Identity) State {
	user := identity.User
	s.User = &user
	s.AccessToken = identity.AccessToken
	s.RefreshToken = identity.RefreshToken
	s.Loading = false
	s.LastError = ""
	return s
}

// Cleared returns the empty session. Used on logout and on irrecoverable
// auth errors; all four identity fields reset together.
func Cleared(State) State {
	return State{}
}

// WithLoading returns a state with the in-flight flag set. Identity fields
// are untouched.
func WithLoading(s State, loading bool) State {
	s.Loading = loading
	return s
}

// WithError returns a state carrying a user-facing failure message. The
// in-flight flag drops: an error always ends the operation that set it.
func WithError(s State, message string) State {
	s.LastError = message
	s.Loading = false
	return s
}

// WithoutError returns a state with the failure message cleared.
func WithoutError(s State) State {
	s.LastError = ""
	return s
}

// WithMergedProfile returns a state whose user record has the non-zero
// fields of partial shallow-merged in. Tokens are untouched. Returns an
// error when there is no user to merge into.
func WithMergedProfile(s State, partial models.User) (State, error) {
	if s.User == nil {
		return s, ErrNoUser
	}

	merged := *s.User
	if err := mergo.Merge(&merged, partial, mergo.WithOverride); err != nil {
		return s, fmt.Errorf("merge profile: %w", err)
	}

	s.User = &merged
	return s, nil
}
