package tui

type confirmModel struct {
	message string
}

func (m confirmModel) view(st styles) string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return st.overlay.Render(content)
}
