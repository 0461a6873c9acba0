package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version shown in the TUI.
	Version string
	// DeviceType labels this installation in login payloads.
	DeviceType string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the reference-data job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for optional fields,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:    cfg.App.Version,
			DeviceType: cfg.App.DeviceType,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.DeviceType == "" {
		cfg.App.DeviceType = "terminal"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = 30 * time.Minute
	}
}
