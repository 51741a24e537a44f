package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local credential database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds polling and batching intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file read before the environment is parsed.
	// It is itself only settable from the process environment.
	DotEnvPath string `env:"DOTENV_PATH"`
}

// Adapter holds settings of the REST backend transport.
type Adapter struct {
	// HTTPAddress is the backend base URL or host:port
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path holding the persisted credential.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds intervals of the client background loops.
type Workers struct {
	// SearchPollInterval is how often active searches are polled.
	// Env: WORKERS_SEARCH_POLL_INTERVAL
	SearchPollInterval time.Duration `env:"SEARCH_POLL_INTERVAL"`

	// ConversationPollInterval is how often an open conversation is refreshed.
	// Env: WORKERS_CONVERSATION_POLL_INTERVAL
	ConversationPollInterval time.Duration `env:"CONVERSATION_POLL_INTERVAL"`

	// BatchSendDelay is the pause between consecutive sends of a batch.
	// Env: WORKERS_BATCH_SEND_DELAY
	BatchSendDelay time.Duration `env:"BATCH_SEND_DELAY"`
}

// Defaults returns the values used for any setting left unset by every
// source.
func Defaults() StructuredConfig {
	return StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "client-crawler.db"},
		},
		Workers: Workers{
			SearchPollInterval:       3 * time.Second,
			ConversationPollInterval: 10 * time.Second,
			BatchSendDelay:           time.Second,
		},
		DotEnvPath: ".env",
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
