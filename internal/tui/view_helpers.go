package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderFormRow renders one "label │ [input]" row with the label padded to
// width.
func renderFormRow(label string, width int, input string) string {
	return fmt.Sprintf("%-*s │ [%s]\n", width, label, input)
}

func renderFeedback(b *strings.Builder, status, errMsg string) {
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
