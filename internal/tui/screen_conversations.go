package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

// ConversationsModel lists every conversation of the user, most recently
// updated first as returned by the backend. Opening one shows its job.
type ConversationsModel struct {
	ctx           context.Context
	conversations service.ConversationService
	jobs          service.JobService

	rows    []models.ConversationSummary
	idx     int
	loading bool
	opening bool

	errMsg string
}

func NewConversationsModel(ctx context.Context, services *service.ClientServices) *ConversationsModel {
	return &ConversationsModel{
		ctx:           ctx,
		conversations: services.Conversations,
		jobs:          services.Jobs,
	}
}

func (m *ConversationsModel) Init() tea.Cmd {
	m.rows = nil
	m.idx = 0
	m.loading = true
	m.opening = false
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *ConversationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case conversationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.rows = msg.conversations
		if m.idx >= len(m.rows) {
			m.idx = 0
		}
		return m, nil
	case conversationJobMsg:
		m.opening = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		job := msg.job
		return m, func() tea.Msg { return NavigateTo{Page: pageJob, Payload: OpenJob{Job: job}} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageJobs} }
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.enter):
		if m.opening || len(m.rows) == 0 {
			return m, nil
		}
		m.opening = true
		m.errMsg = ""
		return m, m.cmdOpen(m.rows[m.idx].JobID)
	}

	return m, nil
}

func (m *ConversationsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading conversations...\n")
	case len(m.rows) == 0:
		b.WriteString("No conversations yet\n")
	default:
		b.WriteString("  Business                 │ Job             │ Last message                   │ Updated\n")
		b.WriteString("───────────────────────────┼─────────────────┼────────────────────────────────┼────────────────────\n")
		for i, c := range m.rows {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s %-24s │ %-15s │ %-30s │ %s\n",
				cursor,
				fitText(c.BusinessName, 24),
				fitText(valueOrDash(c.JobTitle), 15),
				fitText(valueOrDash(c.LastMessage), 30),
				valueOrDash(c.UpdatedAt),
			)
		}
	}

	if m.opening {
		b.WriteString("\nOpening...\n")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("CONVERSATIONS", strings.TrimRight(b.String(), "\n"), "enter: open │ r: reload │ esc: back")
}

func (m *ConversationsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	conversations := m.conversations

	return func() tea.Msg {
		list, err := conversations.List(ctx)
		return conversationsLoadedMsg{conversations: list, err: err}
	}
}

// cmdOpen loads the full job, since the job page needs more than the
// summary carries.
func (m *ConversationsModel) cmdOpen(jobID int64) tea.Cmd {
	ctx := m.ctx
	jobs := m.jobs

	return func() tea.Msg {
		job, err := jobs.Get(ctx, jobID)
		return conversationJobMsg{job: job, err: err}
	}
}
