// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Source-level
// checks live on [ClientConfig]; the merged view only rejects negative
// durations, which no source can meaningfully express.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.SearchPollInterval < 0 || cfg.Workers.ConversationPollInterval < 0 || cfg.Workers.BatchSendDelay < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SearchPollInterval <= 0 || cfg.Workers.ConversationPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
