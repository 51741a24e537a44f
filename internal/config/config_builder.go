package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs so that later sources win, then fills
// anything still unset from [Defaults].
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	defaults := Defaults()
	if err := mergo.Merge(config, defaults); err != nil {
		return nil, fmt.Errorf("error merging default configs: %w", err)
	}

	return config, config.validate()
}

// withDotEnv loads key/value pairs from a .env file into the process
// environment. Variables already set in the environment are not
// overwritten. A missing file is not an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		path = Defaults().DotEnvPath
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			b.err = errors.Join(b.err, fmt.Errorf("error checking .env file: %w", err))
		}
		return b
	}

	if err := godotenv.Load(path); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading .env file: %w", err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
