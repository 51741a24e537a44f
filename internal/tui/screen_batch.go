package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

// BatchModel sends one message to every selected job.
type BatchModel struct {
	ctx           context.Context
	batch         service.BatchSender
	conversations service.ConversationService

	jobs       []models.Job
	compose    textinput.Model
	sending    bool
	generating bool
	result     *models.BatchResult

	errMsg string
}

func NewBatchModel(ctx context.Context, services *service.ClientServices) *BatchModel {
	compose := textinput.New()
	compose.Placeholder = "Message sent to every selected business"
	compose.CharLimit = 1600
	compose.Width = 60

	return &BatchModel{
		ctx:           ctx,
		batch:         services.Batch,
		conversations: services.Conversations,
		compose:       compose,
	}
}

func (m *BatchModel) Init() tea.Cmd {
	return nil
}

func (m *BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BatchTargets:
		m.jobs = msg.Jobs
		m.result = nil
		m.errMsg = ""
		m.sending = false
		m.compose.Focus()
		return m, textinput.Blink
	case batchDoneMsg:
		m.sending = false
		result := msg.result
		m.result = &result
		return m, nil
	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.compose.SetValue(msg.text)
		m.compose.CursorEnd()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			if m.sending {
				return m, nil
			}
			return m, func() tea.Msg { return NavigateTo{Page: pageJobs} }
		case "enter":
			if m.sending || m.result != nil {
				return m, nil
			}
			text := strings.TrimSpace(m.compose.Value())
			if text == "" {
				m.errMsg = "Message text is required"
				return m, nil
			}
			m.errMsg = ""
			m.sending = true
			return m, m.cmdSend(text)
		case "ctrl+g":
			if m.generating || len(m.jobs) == 0 {
				return m, nil
			}
			m.generating = true
			return m, m.cmdGenerate(m.jobs[0])
		}
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m *BatchModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recipients (%d):\n", len(m.jobs))
	for _, job := range m.jobs {
		fmt.Fprintf(&b, "  %-30s %s\n", fitText(job.BusinessName, 30), valueOrDash(job.BusinessPhone))
	}

	b.WriteString("\n> ")
	b.WriteString(m.compose.View())
	b.WriteString("\n")

	if m.sending {
		fmt.Fprintf(&b, "\n[Sending to %d businesses...]\n", len(m.jobs))
	}
	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(batchSummary(*m.result))
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("BATCH SEND", strings.TrimRight(b.String(), "\n"), "enter: send to all │ ctrl+g: generate from first │ esc: back")
}

// batchSummary reports the totals followed by one line per failed job.
func batchSummary(result models.BatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sent %d of %d\n", result.Succeeded, result.Attempted)
	for _, f := range result.Failures {
		fmt.Fprintf(&b, "  failed: %s: %s\n", f.BusinessName, errorText(f.Err))
	}
	return b.String()
}

func (m *BatchModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	batch := m.batch
	jobs := append([]models.Job(nil), m.jobs...)

	return func() tea.Msg {
		return batchDoneMsg{result: batch.Send(ctx, jobs, text)}
	}
}

func (m *BatchModel) cmdGenerate(job models.Job) tea.Cmd {
	ctx := m.ctx
	conversations := m.conversations

	return func() tea.Msg {
		text, err := conversations.Generate(ctx, models.GenerateMessageRequest{
			BusinessName: job.BusinessName,
			JobType:      job.JobType,
		})
		return generatedMsg{text: text, err: err}
	}
}
