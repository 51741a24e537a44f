package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mitchellbreust/client-crawler/internal/service"
	"github.com/mitchellbreust/client-crawler/models"
)

var settingsLabels = []string{"Phone", "Provider", "Twilio SID", "Twilio token", "httpSMS key"}

// SettingsModel edits the messaging settings of the current user. Blank
// secret fields are left unchanged.
type SettingsModel struct {
	ctx  context.Context
	auth service.AuthSession

	inputs []textinput.Model
	focus  int
	saving bool
	status string
	errMsg string
}

func NewSettingsModel(ctx context.Context, auth service.AuthSession) *SettingsModel {
	inputs := make([]textinput.Model, len(settingsLabels))
	for i := range inputs {
		in := textinput.New()
		in.Width = 40
		inputs[i] = in
	}
	inputs[1].Placeholder = models.ProviderTwilio + " / " + models.ProviderHTTPSSMS
	for _, i := range []int{3, 4} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
		inputs[i].Placeholder = "unchanged"
	}

	return &SettingsModel{ctx: ctx, auth: auth, inputs: inputs}
}

// Init fills the form from the current user.
func (m *SettingsModel) Init() tea.Cmd {
	m.saving = false
	m.status = ""
	m.errMsg = ""

	var user models.User
	if u := m.auth.Snapshot().User; u != nil {
		user = *u
	}
	m.inputs[0].SetValue(user.PhoneNumber)
	m.inputs[1].SetValue(user.MessagingProvider)
	m.inputs[2].SetValue(user.TwilioAccountSID)
	m.inputs[3].SetValue("")
	m.inputs[4].SetValue("")

	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
	return textinput.Blink
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(settingsSavedMsg); ok {
		m.saving = false
		if saved.err != nil {
			m.errMsg = errorText(saved.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Settings saved"
		return m, nil
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
			m.saving = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdSave(m.collect())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	var b strings.Builder
	if u := m.auth.Snapshot().User; u != nil {
		b.WriteString("Account: ")
		b.WriteString(u.Email)
		b.WriteString("\n\n")
	}

	b.WriteString("Field         │ Value\n")
	b.WriteString("──────────────┼──────────────────────────────────────────\n")
	for i, label := range settingsLabels {
		b.WriteString(renderFormRow(label, 13, m.inputs[i].View()))
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	renderFeedback(&b, m.status, m.errMsg)

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m *SettingsModel) collect() models.Settings {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return models.Settings{
		PhoneNumber:       v(0),
		MessagingProvider: strings.ToLower(v(1)),
		TwilioAccountSID:  v(2),
		TwilioAuthToken:   v(3),
		HTTPSSMSAPIKey:    v(4),
	}
}

func (m *SettingsModel) cmdSave(settings models.Settings) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return settingsSavedMsg{err: auth.UpdateSettings(ctx, settings)}
	}
}

func (m *SettingsModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
