package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var menuItems = []string{
	"Browse loads",
	"Browse trucks",
	"My vehicles",
	"My trips",
	"Search marketplace",
	"Toll calculator",
	"Mileage calculator",
	"Profile",
}

type menuModel struct {
	idx    int
	status string
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menu.idx < len(menuItems)-1 {
			m.menu.idx++
		}
	case key.Matches(keyMsg, keys.theme):
		next := m.themes.Toggle()
		m.st = newStyles(next.Palette())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		switch m.menu.idx {
		case 0:
			m.currentScreen = screenLoads
			m.loads.loading = true
			return m, m.cmdLoadLoads()
		case 1:
			m.currentScreen = screenTrucks
			m.trucks.loading = true
			return m, m.cmdLoadTrucks()
		case 2:
			m.currentScreen = screenVehicles
			m.vehicles.loading = true
			return m, m.cmdLoadVehicles()
		case 3:
			m.currentScreen = screenTrips
			m.trips.loading = true
			return m, m.cmdLoadTrips()
		case 4:
			m.search = newSearchModel()
			m.currentScreen = screenSearch
			return m, textinput.Blink
		case 5:
			m.calcToll = newCalcTollModel()
			m.currentScreen = screenCalcToll
			return m, textinput.Blink
		case 6:
			m.calcMileage = newCalcMileageModel()
			m.currentScreen = screenCalcMileage
			return m, textinput.Blink
		case 7:
			m.currentScreen = screenProfile
		}
	}

	return m, nil
}

func (m appModel) viewMenu() string {
	st := m.st
	name := ""
	if user := m.sessions.Get().User; user != nil {
		name = user.FullName()
	}

	out := st.title.Render("LogiLink") + "  " + st.help.Render(name) + "\n"
	out += uiDivider + "\n\n"

	if m.menu.status != "" {
		out += st.status.Render(m.menu.status) + "\n\n"
	}

	for i, item := range menuItems {
		cursor := "  "
		if i == m.menu.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}

	out += "\n" + st.help.Render("enter open  t theme ("+m.themes.Get().Palette()+")  l log out  q quit")
	return out
}
