package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

// maxVisibleMessages bounds how much of a long thread is rendered.
const maxVisibleMessages = 15

// JobModel shows one job and its conversation. The conversation refreshes
// in the background while the page is open.
type JobModel struct {
	ctx           context.Context
	jobs          service.JobService
	conversations service.ConversationService
	watcher       service.ConversationWatcher
	send          func(tea.Msg)

	job          models.Job
	conversation *models.Conversation
	watching     bool

	compose    textinput.Model
	sending    bool
	generating bool

	status string
	errMsg string
}

func NewJobModel(ctx context.Context, services *service.ClientServices, send func(tea.Msg)) *JobModel {
	compose := textinput.New()
	compose.Placeholder = "Type a message"
	compose.CharLimit = 1600
	compose.Width = 60

	return &JobModel{
		ctx:           ctx,
		jobs:          services.Jobs,
		conversations: services.Conversations,
		watcher:       services.Watcher,
		send:          send,
		compose:       compose,
	}
}

func (m *JobModel) Init() tea.Cmd {
	return nil
}

func (m *JobModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenJob:
		m.job = msg.Job
		m.conversation = nil
		m.watching = true
		m.sending = false
		m.generating = false
		m.status = ""
		m.errMsg = ""
		m.compose.SetValue("")
		m.compose.Focus()
		return m, tea.Batch(textinput.Blink, m.cmdWatch(msg.Job.ID))
	case conversationMsg:
		if !m.watching || msg.jobID != m.job.ID {
			return m, nil
		}
		if msg.err != nil {
			if !errors.Is(msg.err, service.ErrNoConversation) {
				m.errMsg = errorText(msg.err)
			}
			return m, nil
		}
		conv := msg.conversation
		m.conversation = &conv
		m.job.HasConversation = true
		return m, nil
	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Message sent"
		m.compose.SetValue("")
		m.job.HasConversation = true
		if m.conversation == nil {
			m.conversation = &models.Conversation{}
		}
		m.conversation.Messages = append(m.conversation.Messages, msg.message)
		return m, nil
	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.compose.SetValue(msg.text)
		m.compose.CursorEnd()
		return m, nil
	case jobSavedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		if msg.job.Status != "" {
			m.job.Status = msg.job.Status
		}
		m.status = "Status: " + m.job.Status
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.watching = false
			return m, tea.Batch(m.cmdStopWatch(), func() tea.Msg { return NavigateTo{Page: pageJobs} })
		case "enter":
			if m.sending {
				return m, nil
			}
			text := strings.TrimSpace(m.compose.Value())
			if text == "" {
				m.errMsg = "Message text is required"
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.sending = true
			return m, m.cmdSend(text)
		case "ctrl+g":
			if m.generating {
				return m, nil
			}
			m.generating = true
			m.status = "Generating..."
			return m, m.cmdGenerate()
		case "ctrl+t":
			next := nextJobStatus(m.job.Status)
			job := m.job
			job.Status = next
			return m, m.cmdUpdateStatus(job)
		case "ctrl+y":
			return m, m.copyLastMessage()
		}
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m *JobModel) copyLastMessage() tea.Cmd {
	if m.conversation == nil || len(m.conversation.Messages) == 0 {
		m.status = "Nothing to copy"
		return nil
	}
	last := m.conversation.Messages[len(m.conversation.Messages)-1]
	if err := clipboard.WriteAll(last.Text); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return nil
	}
	m.status = "Copied"
	return nil
}

func (m *JobModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Business │ %s\n", m.job.BusinessName)
	fmt.Fprintf(&b, "Phone    │ %s\n", valueOrDash(m.job.BusinessPhone))
	fmt.Fprintf(&b, "Job type │ %s\n", valueOrDash(m.job.JobType))
	fmt.Fprintf(&b, "Address  │ %s\n", valueOrDash(jobAddress(m.job)))
	fmt.Fprintf(&b, "URL      │ %s\n", valueOrDash(m.job.URL))
	fmt.Fprintf(&b, "Status   │ %s\n", valueOrDash(m.job.Status))
	b.WriteString("\n")

	switch {
	case m.conversation == nil || len(m.conversation.Messages) == 0:
		b.WriteString("No messages yet\n")
	default:
		msgs := m.conversation.Messages
		if len(msgs) > maxVisibleMessages {
			fmt.Fprintf(&b, "... %d earlier messages\n", len(msgs)-maxVisibleMessages)
			msgs = msgs[len(msgs)-maxVisibleMessages:]
		}
		for _, msg := range msgs {
			b.WriteString(renderMessage(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("> ")
	b.WriteString(m.compose.View())
	b.WriteString("\n")
	if m.sending {
		b.WriteString("\n[Sending...]\n")
	}

	renderFeedback(&b, m.status, m.errMsg)

	return renderPage(
		"JOB "+strings.ToUpper(fitText(m.job.BusinessName, 40)),
		strings.TrimRight(b.String(), "\n"),
		"enter: send SMS │ ctrl+g: generate │ ctrl+t: next status │ ctrl+y: copy last │ esc: back",
	)
}

func renderMessage(msg models.Message) string {
	if msg.IsFromUser {
		return outgoingStyle.Render(fmt.Sprintf("%s  %-4s │ %s", shortTimestamp(msg.Timestamp), "you", msg.Text))
	}
	return fmt.Sprintf("%s  %-4s │ %s", shortTimestamp(msg.Timestamp), "them", msg.Text)
}

// shortTimestamp trims an ISO timestamp to minutes.
func shortTimestamp(ts string) string {
	ts = strings.Replace(ts, "T", " ", 1)
	if len(ts) > 16 {
		return ts[:16]
	}
	return ts
}

func jobAddress(job models.Job) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{job.Street, job.Suburb, job.State, job.Postcode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func nextJobStatus(current string) string {
	statuses := jobStatusCycle[1:]
	for i, s := range statuses {
		if s == current {
			return statuses[(i+1)%len(statuses)]
		}
	}
	return statuses[0]
}

func (m *JobModel) cmdWatch(jobID int64) tea.Cmd {
	ctx := m.ctx
	watcher := m.watcher
	send := m.send

	return func() tea.Msg {
		watcher.Watch(ctx, jobID, func(conv models.Conversation, err error) {
			send(conversationMsg{jobID: jobID, conversation: conv, err: err})
		})
		return nil
	}
}

func (m *JobModel) cmdStopWatch() tea.Cmd {
	watcher := m.watcher
	return func() tea.Msg {
		watcher.Stop()
		return nil
	}
}

func (m *JobModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	conversations := m.conversations
	jobID := m.job.ID

	return func() tea.Msg {
		msg, err := conversations.SendToJob(ctx, jobID, text)
		return messageSentMsg{message: msg, err: err}
	}
}

func (m *JobModel) cmdGenerate() tea.Cmd {
	ctx := m.ctx
	conversations := m.conversations
	req := models.GenerateMessageRequest{
		BusinessName: m.job.BusinessName,
		JobType:      m.job.JobType,
		ExtraContext: strings.TrimSpace(m.compose.Value()),
	}

	return func() tea.Msg {
		text, err := conversations.Generate(ctx, req)
		return generatedMsg{text: text, err: err}
	}
}

func (m *JobModel) cmdUpdateStatus(job models.Job) tea.Cmd {
	ctx := m.ctx
	jobs := m.jobs

	return func() tea.Msg {
		updated, err := jobs.Update(ctx, job.ID, job)
		return jobSavedMsg{job: updated, err: err}
	}
}
