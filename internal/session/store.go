package session

import "sync"

// Transition is a pure function from one session state to the next.
type Transition func(State) State

// Store is the single source of truth for the session. All reads and
// writes go through it; transitions are applied under a lock and the
// resulting snapshot is fanned out to subscribers synchronously, in
// subscription order.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

// NewStore returns a store holding the empty (anonymous) session.
func NewStore() *Store {
	return &Store{}
}

// Get returns the current state snapshot.
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Apply runs the transition against the current state, installs the
// result, and notifies subscribers. It returns the new snapshot.
func (s *Store) Apply(t Transition) State {
	s.mu.Lock()
	s.state = t(s.state)
	next := s.state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn to be called with every new snapshot. There is no
// unsubscribe: subscribers live for the life of the process, matching the
// screens that own them.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
