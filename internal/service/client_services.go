package service

import (
	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/config"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/store"
	"github.com/mitchellbreust/client-crawler/internal/workers"
	"github.com/mitchellbreust/client-crawler/models"
)

type ClientServices struct {
	Auth          AuthSession
	Jobs          JobService
	Conversations ConversationService
	Search        SearchStatusPoller
	Batch         BatchSender
	Watcher       ConversationWatcher

	// Workers stops every background loop on shutdown.
	Workers *workers.Workers
}

// NewClientServices wires the services on top of the token store and the
// backend adapter. The auth session becomes the adapter's credential source.
func NewClientServices(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	auth := NewAuthSession(tokens, serverAdapter, logger)
	conversations := NewConversationService(serverAdapter, logger)
	search := NewSearchStatusPoller(serverAdapter, cfg.SearchPollInterval, logger)
	watcher := NewConversationWatcher(conversations, cfg.ConversationPollInterval, logger)

	ws := workers.NewWorkers(search, watcher)
	stopOnSessionEnd(auth, ws, logger)

	return &ClientServices{
		Auth:          auth,
		Jobs:          NewJobService(serverAdapter, logger),
		Conversations: conversations,
		Search:        search,
		Batch:         NewBatchSender(conversations, cfg.BatchSendDelay, logger),
		Watcher:       watcher,
		Workers:       ws,
	}
}

// stopOnSessionEnd resets the background workers whenever the session ends,
// whether by logout or by a rejected credential. The callback may run on a
// worker's own goroutine, so it must not block.
func stopOnSessionEnd(auth AuthSession, ws *workers.Workers, logger *logger.Logger) {
	auth.Subscribe(func(session models.Session) {
		if session.IsAuthenticated() || session.Loading {
			return
		}
		logger.Debug().Str("func", "stopOnSessionEnd").Msg("session ended, resetting background workers")
		ws.ResetAll()
	})
}
