package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

var jobFormLabels = []string{"Business", "Phone", "Job type", "URL", "Street", "Suburb", "State", "Postcode"}

// JobFormModel creates a job by hand.
type JobFormModel struct {
	ctx  context.Context
	jobs service.JobService

	inputs []textinput.Model
	focus  int
	saving bool
	errMsg string
}

func NewJobFormModel(ctx context.Context, jobs service.JobService) *JobFormModel {
	m := &JobFormModel{ctx: ctx, jobs: jobs}
	m.resetForm()
	return m
}

func (m *JobFormModel) Init() tea.Cmd {
	m.resetForm()
	return textinput.Blink
}

func (m *JobFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(jobSavedMsg); ok {
		m.saving = false
		if saved.err != nil {
			m.errMsg = errorText(saved.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageJobs, Payload: StatusNotice{Text: "Job created: " + saved.job.BusinessName}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: pageJobs} }
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter":
			if m.saving {
				return m, nil
			}
			m.errMsg = ""
			m.saving = true
			return m, m.cmdCreate(m.collect())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *JobFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼──────────────────────────────────────────\n")
	for i, label := range jobFormLabels {
		b.WriteString(renderFormRow(label, 9, m.inputs[i].View()))
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("NEW JOB", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m *JobFormModel) collect() models.Job {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return models.Job{
		BusinessName:  v(0),
		BusinessPhone: v(1),
		JobType:       v(2),
		URL:           v(3),
		Street:        v(4),
		Suburb:        v(5),
		State:         v(6),
		Postcode:      v(7),
	}
}

func (m *JobFormModel) cmdCreate(job models.Job) tea.Cmd {
	ctx := m.ctx
	jobs := m.jobs

	return func() tea.Msg {
		created, err := jobs.Create(ctx, job)
		return jobSavedMsg{job: created, err: err}
	}
}

func (m *JobFormModel) resetForm() {
	m.inputs = make([]textinput.Model, len(jobFormLabels))
	for i, label := range jobFormLabels {
		in := textinput.New()
		in.Placeholder = strings.ToLower(label)
		in.Width = 40
		m.inputs[i] = in
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.saving = false
	m.errMsg = ""
}

func (m *JobFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
