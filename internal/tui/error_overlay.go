package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) view(st styles) string {
	content := st.err.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return st.overlay.Render(content)
}
