package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

// authPages are reachable without a session. A 401 while one of them is
// active is ignored.
var authPages = map[string]bool{
	pageMenu:     true,
	pageLogin:    true,
	pageRegister: true,
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) redirects to login on session loss
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices

	pages   map[string]tea.Model
	current string

	session    models.Session
	resolving  bool
	quitByUser bool
}

// NewRootModel registers all pages. Until the stored session is resolved
// the root renders a loading page.
func NewRootModel(ctx context.Context, services *service.ClientServices, pages map[string]tea.Model) RootModel {
	return RootModel{
		ctx:       ctx,
		services:  services,
		pages:     pages,
		current:   pageMenu,
		resolving: true,
	}
}

func (r RootModel) Init() tea.Cmd {
	ctx := r.ctx
	auth := r.services.Auth
	return func() tea.Msg {
		return sessionReadyMsg{err: auth.Init(ctx)}
	}
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	switch msg := msg.(type) {
	case sessionReadyMsg:
		r.resolving = false
		r.session = r.services.Auth.Snapshot()
		if r.session.IsAuthenticated() {
			return r.navigate(NavigateTo{Page: pageJobs})
		}
		nav := NavigateTo{Page: pageMenu}
		if msg.err != nil {
			nav.Payload = StatusNotice{Text: errorText(msg.err)}
		}
		return r.navigate(nav)

	case sessionChangedMsg:
		r.session = msg.session
		return r, nil

	case unauthorizedMsg:
		if r.resolving || authPages[r.current] {
			return r, nil
		}
		return r.navigate(NavigateTo{
			Page:    pageLogin,
			Payload: StatusNotice{Text: service.MsgSessionExpired},
		})

	case loggedOutMsg:
		return r.navigate(NavigateTo{Page: pageMenu})

	case NavigateTo:
		return r.navigate(msg)

	// background updates go to their page even when it is not active
	case searchUpdateMsg, jobsImportedMsg:
		return r.forward(pageJobs, msg)
	case conversationMsg:
		return r.forward(pageJob, msg)
	}

	if r.resolving {
		return r, nil
	}
	return r.forward(r.current, msg)
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}
	if !authPages[nav.Page] && !r.services.Auth.IsAuthenticated() {
		nav = NavigateTo{Page: pageLogin}
		next = r.pages[pageLogin]
	}

	r.current = nav.Page
	if nav.Payload != nil {
		payload := nav.Payload
		return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
	}
	return r, next.Init()
}

func (r RootModel) forward(page string, msg tea.Msg) (tea.Model, tea.Cmd) {
	model, ok := r.pages[page]
	if !ok {
		return r, nil
	}
	updated, cmd := model.Update(msg)
	r.pages[page] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.resolving {
		return renderPage("CLIENT CRAWLER", "Loading session...", "")
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("CLIENT CRAWLER", "", "")
	}
	return page.View()
}

// Current returns the name of the active page.
func (r RootModel) Current() string {
	return r.current
}
