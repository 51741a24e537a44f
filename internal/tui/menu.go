package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mitchellbreust/client-crawler/models"
)

type MenuModel struct {
	items     []string
	idx       int
	status    string
	buildInfo models.AppBuildInfo
	showInfo  bool
}

func NewMenuModel(buildInfo models.AppBuildInfo) *MenuModel {
	return &MenuModel{
		items:     []string{"Log in", "Register", "About"},
		buildInfo: buildInfo,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	m.status = ""
	m.showInfo = false
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(StatusNotice); ok {
		m.status = notice.Text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showInfo {
		if keyMsg.String() == "esc" {
			m.showInfo = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
		default:
			m.showInfo = true
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	return renderPage("CLIENT CRAWLER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ q: quit")
}
