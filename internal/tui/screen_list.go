package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

var jobStatusCycle = []string{"", models.JobPending, models.JobContacted, models.JobInterview, models.JobRejected, models.JobHired}

// JobsModel lists the user's jobs together with the progress of running
// searches. The list reloads by itself when a search finishes importing.
type JobsModel struct {
	ctx      context.Context
	services *service.ClientServices

	// token of the session the page state belongs to
	owner string

	jobs     []models.Job
	visible  []models.Job
	idx      int
	selected map[int64]bool
	loading  bool

	filter       textinput.Model
	filtering    bool
	statusFilter int

	// nil shows all jobs, otherwise only those with or without a conversation
	messaged *bool

	tasks   []models.SearchTask
	spinner spinner.Model

	showConfirm bool
	confirm     confirmModel
	pending     models.Job

	// failures of background loads are shown in an overlay
	showError bool
	overlay   errorOverlayModel

	status string
	errMsg string
}

func NewJobsModel(ctx context.Context, services *service.ClientServices) *JobsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	filter := textinput.New()
	filter.Placeholder = "name, job type or suburb"
	filter.Width = 40

	return &JobsModel{
		ctx:      ctx,
		services: services,
		selected: make(map[int64]bool),
		filter:   filter,
		spinner:  s,
	}
}

func (m *JobsModel) Init() tea.Cmd {
	if token := m.services.Auth.Snapshot().Token; token != m.owner {
		m.resetForSession(token)
	}
	m.tasks = m.services.Search.Tasks()
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return tea.Batch(m.cmdLoadJobs(), m.cmdRefreshSearch(), m.spinner.Tick)
}

// resetForSession drops everything loaded for the previous user.
func (m *JobsModel) resetForSession(token string) {
	m.owner = token
	m.jobs = nil
	m.visible = nil
	m.idx = 0
	m.selected = make(map[int64]bool)
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
	m.statusFilter = 0
	m.messaged = nil
	m.showConfirm = false
	m.showError = false
	m.pending = models.Job{}
}

func (m *JobsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = errorOverlayModel{message: errorText(msg.err)}
			m.showError = true
			return m, nil
		}
		m.errMsg = ""
		m.jobs = msg.jobs
		m.applyFilter()
		return m, nil
	case jobDeletedMsg:
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		delete(m.selected, msg.id)
		m.status = "Job deleted"
		m.errMsg = ""
		return m, m.cmdLoadJobs()
	case searchUpdateMsg:
		m.tasks = msg.tasks
		return m, nil
	case jobsImportedMsg:
		m.status = "Search finished, jobs imported"
		return m, m.cmdLoadJobs()
	case StatusNotice:
		m.status = msg.Text
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.showError {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.showError = false
		}
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.pending.ID)
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.showConfirm = false
			m.pending = models.Job{}
		}
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		job, ok := m.current()
		if !ok {
			m.status = "No jobs"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageJob, Payload: OpenJob{Job: job}} }
	case key.Matches(keyMsg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Page: pageJobForm} }
	case key.Matches(keyMsg, keys.search):
		return m, func() tea.Msg { return NavigateTo{Page: pageSearch} }
	case key.Matches(keyMsg, keys.settings):
		return m, func() tea.Msg { return NavigateTo{Page: pageSettings} }
	case key.Matches(keyMsg, keys.inbox):
		return m, func() tea.Msg { return NavigateTo{Page: pageConversations} }
	case key.Matches(keyMsg, keys.filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.status):
		m.statusFilter = (m.statusFilter + 1) % len(jobStatusCycle)
		m.applyFilter()
	case key.Matches(keyMsg, keys.messaged):
		m.messaged = nextMessagedFilter(m.messaged)
		m.applyFilter()
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.cmdLoadJobs(), m.cmdRefreshSearch())
	case key.Matches(keyMsg, keys.selectJb):
		if job, ok := m.current(); ok {
			if m.selected[job.ID] {
				delete(m.selected, job.ID)
			} else {
				m.selected[job.ID] = true
			}
		}
	case key.Matches(keyMsg, keys.batch):
		targets := m.batchTargets()
		if len(targets) == 0 {
			m.status = "Select jobs with space first"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageBatch, Payload: BatchTargets{Jobs: targets}} }
	case key.Matches(keyMsg, keys.copy):
		job, ok := m.current()
		if !ok || job.BusinessPhone == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(job.BusinessPhone); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Phone number copied"
	case key.Matches(keyMsg, keys.delete):
		job, ok := m.current()
		if !ok {
			return m, nil
		}
		m.pending = job
		m.confirm = confirmModel{businessName: job.BusinessName}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *JobsModel) updateFilter(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(keyMsg)
	m.applyFilter()
	return m, cmd
}

func (m *JobsModel) applyFilter() {
	m.visible = m.services.Jobs.Filter(m.jobs, models.JobFilter{
		Query:           m.filter.Value(),
		Status:          jobStatusCycle[m.statusFilter],
		HasConversation: m.messaged,
	})
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *JobsModel) current() (models.Job, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Job{}, false
	}
	return m.visible[m.idx], true
}

// batchTargets returns the selected jobs in list order.
func (m *JobsModel) batchTargets() []models.Job {
	out := make([]models.Job, 0, len(m.selected))
	for _, job := range m.jobs {
		if m.selected[job.ID] {
			out = append(out, job)
		}
	}
	return out
}

func (m *JobsModel) View() string {
	var b strings.Builder

	if line := searchProgressLine(m.tasks); line != "" {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("Filter: ")
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	if status := jobStatusCycle[m.statusFilter]; status != "" {
		b.WriteString("Status: ")
		b.WriteString(status)
		b.WriteString("\n")
	}
	if m.messaged != nil {
		if *m.messaged {
			b.WriteString("Only contacted businesses\n")
		} else {
			b.WriteString("Only businesses without messages\n")
		}
	}

	switch {
	case m.loading && len(m.jobs) == 0:
		b.WriteString("Loading jobs...\n")
	case len(m.visible) == 0:
		b.WriteString("No jobs\n")
	default:
		b.WriteString("   ID   │ Business                 │ Job type        │ Suburb          │ Status\n")
		b.WriteString("────────┼──────────────────────────┼─────────────────┼─────────────────┼───────────\n")
		for i, job := range m.visible {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			mark := " "
			if m.selected[job.ID] {
				mark = "*"
			}
			fmt.Fprintf(&b, "%s%s %-5d│ %-24s │ %-15s │ %-15s │ %s\n",
				cursor,
				mark,
				job.ID,
				fitText(job.BusinessName, 24),
				fitText(valueOrDash(job.JobType), 15),
				fitText(valueOrDash(job.Suburb), 15),
				valueOrDash(job.Status),
			)
		}
	}

	if n := len(m.selected); n > 0 {
		fmt.Fprintf(&b, "\n%d selected\n", n)
	}
	renderFeedback(&b, m.status, m.errMsg)

	out := renderPage(
		"JOBS",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ s: search │ i: conversations │ /: filter │ t: status │ m: messaged │ space: select │ b: batch │ c: copy phone │ ctrl+d: delete │ r: reload │ o: settings │ L: log out",
	)
	switch {
	case m.showError:
		out += "\n" + m.overlay.View()
	case m.showConfirm:
		out += "\n" + m.confirm.View()
	}
	return out
}

// nextMessagedFilter cycles all → with conversation → without → all.
func nextMessagedFilter(current *bool) *bool {
	switch {
	case current == nil:
		v := true
		return &v
	case *current:
		v := false
		return &v
	default:
		return nil
	}
}

// searchProgressLine summarises the active searches, or returns "" when
// none is running.
func searchProgressLine(tasks []models.SearchTask) string {
	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if !t.Status.Active() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s in %s %s: %d%%", t.What, t.Where, t.State, t.Progress))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Searching " + strings.Join(parts, ", ")
}

func (m *JobsModel) cmdLoadJobs() tea.Cmd {
	ctx := m.ctx
	jobs := m.services.Jobs

	return func() tea.Msg {
		list, err := jobs.List(ctx)
		return jobsLoadedMsg{jobs: list, err: err}
	}
}

// cmdRefreshSearch polls once so searches started in an earlier run are
// picked up. Snapshots arrive through the poller's update callback and the
// poller logs its own failures.
func (m *JobsModel) cmdRefreshSearch() tea.Cmd {
	ctx := m.ctx
	search := m.services.Search

	return func() tea.Msg {
		_ = search.Refresh(ctx)
		return nil
	}
}

func (m *JobsModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	jobs := m.services.Jobs

	return func() tea.Msg {
		return jobDeletedMsg{id: id, err: jobs.Delete(ctx, id)}
	}
}

func (m *JobsModel) cmdLogout() tea.Cmd {
	return logoutCmd(m.ctx, m.services)
}

// logoutCmd stops background polling before dropping the session.
func logoutCmd(ctx context.Context, services *service.ClientServices) tea.Cmd {
	return func() tea.Msg {
		services.Workers.StopAll()
		services.Auth.Logout(ctx)
		return loggedOutMsg{}
	}
}
