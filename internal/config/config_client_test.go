// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_FromDefaults(t *testing.T) {
	defaults := Defaults()

	cfg, err := newClientConfig(&defaults)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Workers.SearchPollInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.ConversationPollInterval)
	assert.Equal(t, time.Second, cfg.Workers.BatchSendDelay)
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no backend address",
			mutate:  func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero poll interval",
			mutate:  func(c *StructuredConfig) { c.Workers.SearchPollInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "zero batch delay is allowed",
			mutate:  func(c *StructuredConfig) { c.Workers.BatchSendDelay = 0 },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			_, err := newClientConfig(&cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
