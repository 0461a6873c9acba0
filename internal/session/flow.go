package session

import (
	"fmt"
	"sync"
)

// FlowStage is one step of the login call sequence.
type FlowStage int

const (
	// FlowIdle: no login attempt in progress.
	FlowIdle FlowStage = iota
	// FlowPhoneChecked: the phone was confirmed registered; a code may be
	// requested.
	FlowPhoneChecked
	// FlowChallengeSent: a code was requested; verification may proceed.
	FlowChallengeSent
)

func (s FlowStage) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowPhoneChecked:
		return "phone-checked"
	case FlowChallengeSent:
		return "challenge-sent"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Flow enforces the check → send → verify ordering of the login sequence.
// The original client left the ordering to screen conventions; here calls
// out of order fail with [ErrFlowOrder] before any network I/O.
//
// One flow tracks one phone number. Requesting a second code while a
// challenge is outstanding is allowed and supersedes the first challenge
// (last-write-wins, matching the backend's OTP store).
type Flow struct {
	mu    sync.Mutex
	stage FlowStage
	phone string
}

// NewFlow returns a flow at [FlowIdle].
func NewFlow() *Flow {
	return &Flow{}
}

// Stage returns the current stage.
func (f *Flow) Stage() FlowStage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

// Phone returns the phone number of the attempt in progress, empty at
// [FlowIdle].
func (f *Flow) Phone() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phone
}

// PhoneChecked records a successful registration check and moves the flow
// to [FlowPhoneChecked]. Starting a check is always allowed: it begins a
// fresh attempt and discards any earlier progress.
func (f *Flow) PhoneChecked(phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stage = FlowPhoneChecked
	f.phone = phone
}

// RequestAllowed reports whether a code may be requested for phone without
// advancing the flow. Used to reject an out-of-order request before any
// network I/O; [ChallengeRequested] records the transition afterwards.
func (f *Flow) RequestAllowed(phone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage == FlowIdle {
		return fmt.Errorf("%w: request otp at stage %s", ErrFlowOrder, f.stage)
	}
	if phone != f.phone {
		return fmt.Errorf("%w: request otp for %q during attempt for %q", ErrFlowOrder, phone, f.phone)
	}
	return nil
}

// ChallengeRequested moves the flow to [FlowChallengeSent]. Allowed from
// FlowPhoneChecked and from FlowChallengeSent (re-send supersedes);
// rejected from FlowIdle.
func (f *Flow) ChallengeRequested(phone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage == FlowIdle {
		return fmt.Errorf("%w: request otp at stage %s", ErrFlowOrder, f.stage)
	}
	if phone != f.phone {
		return fmt.Errorf("%w: request otp for %q during attempt for %q", ErrFlowOrder, phone, f.phone)
	}

	f.stage = FlowChallengeSent
	return nil
}

// VerifyAllowed reports whether a verify call may proceed for phone.
// Only [FlowChallengeSent] with a matching phone qualifies.
func (f *Flow) VerifyAllowed(phone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stage != FlowChallengeSent {
		return fmt.Errorf("%w: verify otp at stage %s", ErrFlowOrder, f.stage)
	}
	if phone != f.phone {
		return fmt.Errorf("%w: verify otp for %q during attempt for %q", ErrFlowOrder, phone, f.phone)
	}
	return nil
}

// Reset returns the flow to [FlowIdle]. Called after a successful
// verification and when the user abandons the attempt.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stage = FlowIdle
	f.phone = ""
}
