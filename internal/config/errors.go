package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing backend address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty DSN or an in-memory DSN, which would defeat
	// session persistence across restarts).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
