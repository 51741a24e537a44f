package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellbreust/client-crawler/internal/adapter"
	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/models"
)

type conversationService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewConversationService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ConversationService {
	return &conversationService{adapter: serverAdapter, logger: logger}
}

func (s *conversationService) List(ctx context.Context) ([]models.ConversationSummary, error) {
	return s.adapter.ListConversations(ctx)
}

func (s *conversationService) ForJob(ctx context.Context, jobID int64) (models.Conversation, error) {
	conv, err := s.adapter.GetConversation(ctx, jobID)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrNoConversation, err)
	}
	return conv, err
}

func (s *conversationService) CreateForJob(ctx context.Context, jobID int64) (int64, error) {
	conv, err := s.adapter.CreateConversation(ctx, jobID)
	if err == nil {
		return conv.ID, nil
	}
	if !errors.Is(err, adapter.ErrConflict) {
		return 0, err
	}

	// 409 carries the id of the conversation that already exists
	var httpErr *adapter.HTTPError
	var existing models.ConversationResponse
	if errors.As(err, &httpErr) && httpErr.Decode(&existing) == nil {
		if existing.ConversationID != 0 {
			return existing.ConversationID, nil
		}
		if existing.Conversation.ID != 0 {
			return existing.Conversation.ID, nil
		}
	}

	conv, err = s.ForJob(ctx, jobID)
	if err != nil {
		return 0, err
	}
	return conv.ID, nil
}

func (s *conversationService) Send(ctx context.Context, conversationID int64, text string, sendSMS bool) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, newValidationError("Message text is required")
	}
	return s.adapter.SendMessage(ctx, conversationID, models.SendMessageRequest{Text: text, SendSMS: sendSMS})
}

func (s *conversationService) SendToJob(ctx context.Context, jobID int64, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, newValidationError("Message text is required")
	}

	convID, err := s.CreateForJob(ctx, jobID)
	if err != nil {
		s.logger.Err(err).Str("func", "conversationService.SendToJob").Int64("job_id", jobID).Msg("error opening conversation")
		return models.Message{}, err
	}

	msg, err := s.Send(ctx, convID, text, true)
	if err != nil {
		s.logger.Err(err).
			Str("func", "conversationService.SendToJob").
			Int64("job_id", jobID).
			Int64("conversation_id", convID).
			Msg("error sending message")
		return models.Message{}, err
	}
	return msg, nil
}

func (s *conversationService) Generate(ctx context.Context, req models.GenerateMessageRequest) (string, error) {
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.JobType = strings.TrimSpace(req.JobType)
	if req.BusinessName == "" || req.JobType == "" {
		return "", newValidationError("Business name and job type are required")
	}
	return s.adapter.GenerateMessage(ctx, req)
}
