package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":     "1.4.0",
		"APP_DEVICE_TYPE": "terminal",

		"ADAPTER_ADDRESS":         "https://api.logilink.example",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"STORAGE_DB_DATABASE_URI": "/var/lib/logilink/client.db",

		"SERVER_ADDRESS":        "localhost:8080",
		"SERVER_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_TOKEN_ISSUER":   "test_issuer",
		"SERVER_TOKEN_DURATION": "1h",

		"WORKERS_REFRESH_INTERVAL": "10m",
	}
	setEnvVars(t, envVars)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "terminal", cfg.App.DeviceType)

	assert.Equal(t, "https://api.logilink.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/logilink/client.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "jwt_secret", cfg.Server.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Server.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Server.TokenDuration)

	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	envVars := map[string]string{
		"ADAPTER_ADDRESS":       "http://localhost:9000",
		"SERVER_TOKEN_SIGN_KEY": "jwt_secret",
	}
	setEnvVars(t, envVars)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "jwt_secret", cfg.Server.TokenSignKey)
	assert.Empty(t, cfg.Server.TokenIssuer)

	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
