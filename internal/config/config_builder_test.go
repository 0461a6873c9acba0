package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result and that earlier sources win.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://first"}},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "http://second", RequestTimeout: 15 * time.Second},
			Storage: Storage{DB: DB{DSN: "client.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps non-zero values from earlier configs
	assert.Equal(t, "http://first", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSpecified verifies that no JSON config is appended when
// no prior source named a file.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_ValidFile verifies that a JSON file named by a prior source is
// parsed and appended.
func TestWithJSON_ValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"http_address":    "http://json-source",
			"request_timeout": "20s",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	jsonCfg := b.configs[1]
	assert.Equal(t, "http://json-source", jsonCfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, jsonCfg.Adapter.RequestTimeout)
}

// TestWithJSON_MissingFile verifies that a missing file sets the builder
// error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	require.Error(t, b.err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestClientConfigValidate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "client.db"}},
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid
		assert.NoError(t, cfg.validate())
	})

	t.Run("empty dsn", func(t *testing.T) {
		cfg := valid
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("in-memory dsn rejected", func(t *testing.T) {
		cfg := valid
		cfg.Storage.DB.DSN = ":memory:"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing adapter address", func(t *testing.T) {
		cfg := valid
		cfg.Adapter.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})
}
