package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the configuration view for the dev stub server
// binary, assembled from [StructuredConfig].
type DevServerConfig struct {
	// HTTPAddress is the listen address, "host:port".
	HTTPAddress string
	// TokenSignKey signs the JWTs the stub mints on login.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// GetDevServerConfig builds and validates the dev server config view.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		HTTPAddress:   cfg.Server.HTTPAddress,
		TokenSignKey:  cfg.Server.TokenSignKey,
		TokenIssuer:   cfg.Server.TokenIssuer,
		TokenDuration: cfg.Server.TokenDuration,
	}

	if devCfg.HTTPAddress == "" {
		devCfg.HTTPAddress = "localhost:8080"
	}
	if devCfg.TokenSignKey == "" {
		devCfg.TokenSignKey = "dev-only-sign-key"
	}
	if devCfg.TokenIssuer == "" {
		devCfg.TokenIssuer = "logilink-devserver"
	}
	if devCfg.TokenDuration == 0 {
		devCfg.TokenDuration = 24 * time.Hour
	}

	return devCfg, nil
}
