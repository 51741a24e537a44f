package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders four
// text inputs (email, password, password confirmation and phone number) and
// dispatches an async registration command on form submission. The confirmation is
// only checked locally. On success the new session is active and the job list opens.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthSession

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with four pre-configured text inputs.
// The email field receives focus immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, auth service.AuthSession) *RegisterModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "email"
	fields[0].CharLimit = 254
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "password"
	fields[1].EchoMode = textinput.EchoPassword
	fields[1].EchoCharacter = '*'
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "repeat password"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "+61400000000 (optional)"
	fields[3].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authResultMsg]: clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the job list.
//   - esc: cancels and navigates back to the menu.
//   - tab: moves focus to the next input.
//   - shift+tab: moves focus to the previous input.
//   - enter: validates the form locally and dispatches the async
//     registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = errorText(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg { return NavigateTo{Page: pageJobs} }
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

			form := models.RegistrationForm{
				Email:           strings.TrimSpace(m.inputs[0].Value()),
				Password:        m.inputs[1].Value(),
				ConfirmPassword: m.inputs[2].Value(),
				PhoneNumber:     strings.TrimSpace(m.inputs[3].Value()),
			}
			if problem := form.Validate(); problem != "" {
				m.errMsg = problem
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(form.Registration())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the registration form as a two-column table,
// a submission indicator, and an optional error message.
func (m *RegisterModel) View() string {
	labels := []string{"Email", "Password", "Repeat", "Phone"}

	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(renderFormRow(label, 8, m.inputs[i].View()))
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	renderFeedback(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return authResultMsg{err: auth.Register(ctx, reg)}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
