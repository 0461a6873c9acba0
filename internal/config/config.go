package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// logilink client and its dev stub server. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version and
	// the device descriptor submitted with login requests.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend base URL and outbound request timeout
	// used by the client transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings for the dev stub server binary.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DeviceType labels this installation in login and registration
	// payloads (e.g. "terminal"). Env: APP_DEVICE_TYPE
	DeviceType string `env:"DEVICE_TYPE"`
}

// Adapter holds the outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the base URL of the marketplace backend
	// (e.g. "https://api.logilink.example"). Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request (e.g. "15s"). Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database that keeps
// the persisted session and theme slices.
type DB struct {
	// DSN is the sqlite file path. Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the dev stub server.
type Server struct {
	// HTTPAddress is the TCP address the stub server listens on,
	// in "host:port" format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the secret used to sign the JWTs the stub server
	// mints. Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in issued tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long issued tokens remain valid.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the reference-data job re-fetches the
	// state and city lists. Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
