package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/models"
)

const defaultBatchSendDelay = time.Second

type batchSender struct {
	conversations ConversationService
	delay         time.Duration
	logger        *logger.Logger
}

// NewBatchSender returns a sender that waits delay between consecutive
// sends. delay defaults to one second when zero or negative.
func NewBatchSender(conversations ConversationService, delay time.Duration, logger *logger.Logger) BatchSender {
	if delay <= 0 {
		delay = defaultBatchSendDelay
	}
	return &batchSender{conversations: conversations, delay: delay, logger: logger}
}

func (b *batchSender) Send(ctx context.Context, jobs []models.Job, text string) models.BatchResult {
	// burst 1: the first send goes out at once, every later one waits delay
	limiter := rate.NewLimiter(rate.Every(b.delay), 1)

	var result models.BatchResult
	for _, job := range jobs {
		if err := limiter.Wait(ctx); err != nil {
			b.logger.Warn().Err(err).Str("func", "batchSender.Send").Msg("batch cancelled")
			break
		}

		result.Attempted++
		if _, err := b.conversations.SendToJob(ctx, job.ID, text); err != nil {
			result.Failures = append(result.Failures, models.BatchFailure{
				JobID:        job.ID,
				BusinessName: job.BusinessName,
				Err:          err,
			})
		}
	}
	result.Succeeded = result.Attempted - len(result.Failures)

	b.logger.Info().
		Str("func", "batchSender.Send").
		Int("attempted", result.Attempted).
		Int("succeeded", result.Succeeded).
		Msg("batch finished")
	return result
}
