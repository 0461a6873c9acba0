package session

import "errors"

var (
	// ErrNoUser is returned by profile merges against an anonymous session.
	ErrNoUser = errors.New("no user in session")

	// ErrFlowOrder is returned when an auth call arrives out of sequence
	// (e.g. requesting a code before the phone check, or verifying before
	// a code was requested).
	ErrFlowOrder = errors.New("auth call out of order")
)
