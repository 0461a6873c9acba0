package store

import (
	"context"

	"github.com/logilink/logilink-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/state_repository_mock.go -package=mock

// PersistedSession is the durable shape of the identity slice: the logged-in
// user plus both tokens, written and read as one unit.
type PersistedSession struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

// PersistedTheme is the durable shape of the display preference slice.
type PersistedTheme struct {
	IsDark bool `json:"isDark"`
}

// StateRepository persists the state slices that must survive a restart.
// Each slice is saved and loaded as one atomic payload: a reader either sees
// a complete earlier write or nothing at all.
type StateRepository interface {
	// SaveSession persists the identity slice, replacing any earlier write.
	SaveSession(ctx context.Context, session PersistedSession) error
	// LoadSession returns the last persisted identity slice.
	// Returns [ErrNothingPersisted] when no session was ever saved and
	// [ErrCorruptPayload] when the stored payload cannot be decoded.
	LoadSession(ctx context.Context) (PersistedSession, error)
	// ClearSession removes the persisted identity slice. Clearing an absent
	// slice is not an error.
	ClearSession(ctx context.Context) error

	// SaveTheme persists the display preference slice.
	SaveTheme(ctx context.Context, theme PersistedTheme) error
	// LoadTheme returns the last persisted display preference.
	// Returns [ErrNothingPersisted] when no preference was ever saved.
	LoadTheme(ctx context.Context) (PersistedTheme, error)
}
