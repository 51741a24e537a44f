package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the ADAPTER_, STORAGE_ and WORKERS_ variables into a fresh
// [StructuredConfig]. Unset variables leave zero values, which the merge
// step skips.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
