package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background loop settings.
type ClientWorkers struct {
	// SearchPollInterval defines how often active searches are polled.
	SearchPollInterval time.Duration
	// ConversationPollInterval defines how often an open conversation
	// is refreshed.
	ConversationPollInterval time.Duration
	// BatchSendDelay is the fixed pause between consecutive batch sends.
	BatchSendDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background loop settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SearchPollInterval:       cfg.Workers.SearchPollInterval,
			ConversationPollInterval: cfg.Workers.ConversationPollInterval,
			BatchSendDelay:           cfg.Workers.BatchSendDelay,
		},
	}

	return clientCfg, clientCfg.validate()
}
