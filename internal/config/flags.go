package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a backend address (URL or host:port)
//	-d local database DSN (SQLite file)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s")
//	-search-poll-interval search status polling interval (e.g., "3s")
//	-conversation-poll-interval open conversation refresh interval (e.g., "10s")
//	-batch-send-delay pause between batch sends (e.g., "1s")
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var backendAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var searchPollInterval time.Duration
	var conversationPollInterval time.Duration
	var batchSendDelay time.Duration

	fs.StringVar(&backendAddress, "a", "", "Backend address (URL or host:port)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.DurationVar(&searchPollInterval, "search-poll-interval", 0, "Search status polling interval (e.g., 3s)")
	fs.DurationVar(&conversationPollInterval, "conversation-poll-interval", 0, "Conversation refresh interval (e.g., 10s)")
	fs.DurationVar(&batchSendDelay, "batch-send-delay", 0, "Delay between batch sends (e.g., 1s)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			SearchPollInterval:       searchPollInterval,
			ConversationPollInterval: conversationPollInterval,
			BatchSendDelay:           batchSendDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}
