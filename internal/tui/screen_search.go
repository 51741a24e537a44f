package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

var australianStates = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}

// SearchModel starts a background business search. Progress is shown on
// the job list.
type SearchModel struct {
	ctx    context.Context
	search service.SearchStatusPoller

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewSearchModel(ctx context.Context, search service.SearchStatusPoller) *SearchModel {
	what := textinput.New()
	what.Placeholder = "barista"
	what.Width = 40

	where := textinput.New()
	where.Placeholder = "Sydney"
	where.Width = 40

	state := textinput.New()
	state.Placeholder = strings.Join(australianStates, "/")
	state.CharLimit = 3
	state.Width = 40

	return &SearchModel{
		ctx:    ctx,
		search: search,
		inputs: []textinput.Model{what, where, state},
	}
}

func (m *SearchModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.setFocus(0)
	return textinput.Blink
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(searchSubmittedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = errorText(result.err)
			return m, nil
		}
		text := "Search started"
		if result.handle.Message != "" {
			text = result.handle.Message
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageJobs, Payload: StatusNotice{Text: text}} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: pageJobs} }
		case "tab":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			req := models.SearchRequest{
				What:  strings.TrimSpace(m.inputs[0].Value()),
				Where: strings.TrimSpace(m.inputs[1].Value()),
				State: strings.ToUpper(strings.TrimSpace(m.inputs[2].Value())),
			}
			if req.State != "" && !slices.Contains(australianStates, req.State) {
				m.errMsg = "State must be one of " + strings.Join(australianStates, ", ")
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SearchModel) View() string {
	var b strings.Builder
	b.WriteString("Field  │ Value\n")
	b.WriteString("───────┼──────────────────────────────────────────\n")
	b.WriteString(renderFormRow("What", 6, m.inputs[0].View()))
	b.WriteString(renderFormRow("Where", 6, m.inputs[1].View()))
	b.WriteString(renderFormRow("State", 6, m.inputs[2].View()))

	if m.submitting {
		b.WriteString("\n[Starting...]\n")
	} else {
		b.WriteString("\n[Search]\n")
	}
	if n := m.search.ActiveCount(); n > 0 {
		fmt.Fprintf(&b, "\nAlready running: %d\n", n)
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("SEARCH BUSINESSES", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: start")
}

func (m *SearchModel) cmdSubmit(req models.SearchRequest) tea.Cmd {
	ctx := m.ctx
	search := m.search

	return func() tea.Msg {
		handle, err := search.Submit(ctx, req)
		return searchSubmittedMsg{handle: handle, err: err}
	}
}

func (m *SearchModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

