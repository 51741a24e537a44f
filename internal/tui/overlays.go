package tui

// confirmModel asks before a job is removed.
type confirmModel struct {
	businessName string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render("Remove " + m.businessName + " from your jobs?\n\ny: remove │ n: keep")
}

// errorOverlayModel shows a load failure until dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render("Something went wrong\n\n" + m.message + "\n\nenter/esc: close")
}
