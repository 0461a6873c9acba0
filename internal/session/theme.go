package session

import "sync"

// ThemeState is the persisted display preference plus its derived palette
// name. It shares the durable-storage mechanism with the session but is
// otherwise unrelated to it.
type ThemeState struct {
	IsDark bool
}

// Palette returns the palette label the TUI styles key off.
func (t ThemeState) Palette() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// ThemeStore is the process-wide holder of the theme preference.
type ThemeStore struct {
	mu    sync.RWMutex
	state ThemeState
	subs  []func(ThemeState)
}

// NewThemeStore returns a store holding the light theme.
func NewThemeStore() *ThemeStore {
	return &ThemeStore{}
}

// Get returns the current theme snapshot.
func (s *ThemeStore) Get() ThemeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetDark installs the preference and notifies subscribers.
func (s *ThemeStore) SetDark(isDark bool) ThemeState {
	s.mu.Lock()
	s.state = ThemeState{IsDark: isDark}
	next := s.state
	subs := make([]func(ThemeState), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Toggle flips the preference and returns the new snapshot.
func (s *ThemeStore) Toggle() ThemeState {
	return s.SetDark(!s.Get().IsDark)
}

// Subscribe registers fn to be called with every new snapshot.
func (s *ThemeStore) Subscribe(fn func(ThemeState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
