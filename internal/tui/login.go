// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The client-crawler Authors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email and password) and dispatches an async login command on form submission.
// On success it navigates to the job list.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthSession

	inputs     []textinput.Model
	focus      int
	submitting bool
	notice     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and password inputs.
// The email field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthSession) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model]. Resets the form and starts the cursor-blink
// animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	m.notice = ""
	m.errMsg = ""
	m.inputs[1].SetValue("")
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authResultMsg]: clears submitting state; on error, populates errMsg;
//     on success, navigates to the job list.
//   - [StatusNotice]: shows why the user was sent here.
//   - esc: cancels and navigates back to the menu.
//   - tab: moves focus to the next input.
//   - shift+tab: moves focus to the previous input.
//   - enter: validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.inputs[1].SetValue("")
		return m, func() tea.Msg { return NavigateTo{Page: pageJobs} }
	case StatusNotice:
		m.notice = msg.Text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if email == "" || pass == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form as a two-column table with
// email and password inputs, a submission indicator, and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString(renderFormRow("Email", 8, m.inputs[0].View()))
	b.WriteString(renderFormRow("Password", 8, m.inputs[1].View()))

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	renderFeedback(&b, "", m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return authResultMsg{err: auth.Login(ctx, models.Credentials{Email: email, Password: pass})}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
