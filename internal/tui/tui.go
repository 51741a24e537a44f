package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/logger"
	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

// TUI runs the terminal program and bridges background events into it.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	program atomic.Pointer[tea.Program]
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. Quitting with ctrl+c yields ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(t.buildInfo),
		pageLogin:    NewLoginModel(ctx, t.services.Auth),
		pageRegister: NewRegisterModel(ctx, t.services.Auth),
		pageJobs:     NewJobsModel(ctx, t.services),
		pageJobForm:  NewJobFormModel(ctx, t.services.Jobs),
		pageJob:      NewJobModel(ctx, t.services, t.send),
		pageSearch:   NewSearchModel(ctx, t.services.Search),
		pageBatch:    NewBatchModel(ctx, t.services),
		pageSettings: NewSettingsModel(ctx, t.services.Auth),

		pageConversations: NewConversationsModel(ctx, t.services),
	}

	root := NewRootModel(ctx, t.services, pages)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.program.Store(program)
	defer t.program.Store(nil)

	t.services.Search.OnUpdate(func(tasks []models.SearchTask) {
		t.send(searchUpdateMsg{tasks: tasks})
	})
	t.services.Search.OnJobsImported(func() {
		t.send(jobsImportedMsg{})
	})
	unsubscribe := t.services.Auth.Subscribe(func(session models.Session) {
		t.send(sessionChangedMsg{session: session})
	})
	defer unsubscribe()

	finalModel, err := program.Run()
	if err != nil {
		t.logger.Error().Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// Unauthorized redirects the program to the login page. It is installed
// as the adapter's 401 handler.
func (t *TUI) Unauthorized() {
	t.send(unauthorizedMsg{})
}

// send delivers msg to the running program. Without one it is dropped.
func (t *TUI) send(msg tea.Msg) {
	if p := t.program.Load(); p != nil {
		p.Send(msg)
	}
}
