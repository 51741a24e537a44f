package service

import (
	"context"
	"errors"
	"time"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/workers"
	"github.com/mitchellbreust/client-crawler/models"
)

const defaultConversationPollInterval = 10 * time.Second

type conversationWatcher struct {
	conversations ConversationService
	interval      time.Duration
	loop          workers.Loop
	logger        *logger.Logger
}

func NewConversationWatcher(conversations ConversationService, interval time.Duration, logger *logger.Logger) ConversationWatcher {
	if interval <= 0 {
		interval = defaultConversationPollInterval
	}
	return &conversationWatcher{conversations: conversations, interval: interval, logger: logger}
}

func (w *conversationWatcher) Watch(ctx context.Context, jobID int64, fn func(models.Conversation, error)) {
	w.loop.Stop()

	fetch := func(ctx context.Context) bool {
		conv, err := w.conversations.ForJob(ctx, jobID)
		if ctx.Err() != nil {
			return false
		}
		if err != nil {
			w.logger.Debug().Err(err).Str("func", "conversationWatcher.Watch").Int64("job_id", jobID).Msg("conversation refresh failed")
		}
		fn(conv, err)
		return !errors.Is(err, adapter.ErrUnauthorized)
	}

	loopCtx := context.WithoutCancel(ctx)
	if !fetch(loopCtx) {
		return
	}
	w.loop.Start(loopCtx, w.interval, fetch)
}

func (w *conversationWatcher) Stop() {
	w.loop.Stop()
}

// Reset implements workers.Resetter.
func (w *conversationWatcher) Reset() {
	w.loop.Cancel()
}
