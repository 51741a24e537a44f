package models

// Message is one SMS in a conversation.
type Message struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	IsFromUser bool   `json:"is_from_user"`
	Timestamp  string `json:"timestamp"`
	TwilioSID  string `json:"twilio_sid,omitempty"`
}

// JobRef is the job summary embedded in a conversation.
type JobRef struct {
	ID            int64  `json:"id"`
	BusinessName  string `json:"business_name"`
	BusinessPhone string `json:"business_phone"`
}

// Conversation is the full thread for one job.
type Conversation struct {
	ID        int64     `json:"id"`
	CreatedAt string    `json:"created_at"`
	Messages  []Message `json:"messages,omitempty"`
	Job       *JobRef   `json:"job,omitempty"`
}

// ConversationSummary is a row of GET /api/conversations.
type ConversationSummary struct {
	ID            int64  `json:"id"`
	JobID         int64  `json:"job_id"`
	BusinessName  string `json:"business_name"`
	JobTitle      string `json:"job_title"`
	BusinessPhone string `json:"business_phone"`
	LastMessage   string `json:"last_message,omitempty"`
	UpdatedAt     string `json:"updated_at"`
	CreatedAt     string `json:"created_at"`
}

// ConversationResponse wraps a conversation returned by the job
// conversation endpoints.
type ConversationResponse struct {
	Message        string       `json:"message,omitempty"`
	Conversation   Conversation `json:"conversation"`
	ConversationID int64        `json:"conversation_id,omitempty"`
}

// ConversationsResponse is the body of GET /api/conversations.
type ConversationsResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
}

// SendMessageRequest is the body of POST /api/conversations/{id}/messages.
type SendMessageRequest struct {
	Text    string `json:"text"`
	SendSMS bool   `json:"send_sms"`
}

// SendMessageResponse is returned after a message is stored and sent.
type SendMessageResponse struct {
	Message     string  `json:"message"`
	MessageData Message `json:"message_data"`
}

// GenerateMessageRequest asks the backend to draft outreach text.
type GenerateMessageRequest struct {
	BusinessName string `json:"business_name"`
	JobType      string `json:"job_type"`
	ExtraContext string `json:"extra_context,omitempty"`
}

// GenerateMessageResponse carries the drafted text.
type GenerateMessageResponse struct {
	GeneratedMessage string `json:"generated_message"`
}

// BatchFailure records one failed send in a batch.
type BatchFailure struct {
	JobID        int64
	BusinessName string
	Err          error
}

// BatchResult aggregates a batch send.
type BatchResult struct {
	Attempted int
	Succeeded int
	Failures  []BatchFailure
}
