package models

import "time"

// OTPLength is the fixed length of a one-time code. The entry screen
// renders this many cells and VerifyOTP rejects codes of any other length
// before touching the network.
const OTPLength = 4

// OTPChallenge is the transient record of one login attempt. It is never
// persisted: it exists from the moment a code is requested until the code
// is verified or the user navigates away.
type OTPChallenge struct {
	// MobileNumber is the phone number the code was sent to.
	MobileNumber string

	// Sent reports whether the backend confirmed delivery of the code.
	Sent bool

	// EchoCode carries the code echoed back by non-production backends
	// for automated testing. Empty against the real provider.
	EchoCode string

	// RequestedAt is when the send call completed.
	RequestedAt time.Time
}
