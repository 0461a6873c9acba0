package tui

import "github.com/charmbracelet/lipgloss"

// styles is the palette-dependent style set. The app model rebuilds it
// whenever the theme preference flips.
type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	status  lipgloss.Style
	overlay lipgloss.Style
}

func newStyles(palette string) styles {
	title := lipgloss.Color("63")
	status := lipgloss.Color("28")
	errColor := lipgloss.Color("160")
	if palette == "dark" {
		title = lipgloss.Color("117")
		status = lipgloss.Color("114")
		errColor = lipgloss.Color("203")
	}

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(title),
		help:    lipgloss.NewStyle().Faint(true),
		err:     lipgloss.NewStyle().Bold(true).Foreground(errColor),
		status:  lipgloss.NewStyle().Foreground(status),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}
