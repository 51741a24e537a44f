package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SearchPollInterval       Duration `json:"search_poll_interval"`
		ConversationPollInterval Duration `json:"conversation_poll_interval"`
		BatchSendDelay           Duration `json:"batch_send_delay"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			SearchPollInterval:       time.Duration(jsonCfg.Workers.SearchPollInterval),
			ConversationPollInterval: time.Duration(jsonCfg.Workers.ConversationPollInterval),
			BatchSendDelay:           time.Duration(jsonCfg.Workers.BatchSendDelay),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
