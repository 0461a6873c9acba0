package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// truckListModel is the truck board, the mirror image of the load board.
type truckListModel struct {
	items    []models.TruckPost
	idx      int
	loading  bool
	filter   textinput.Model
	filterOn bool
	status   string
}

func newTruckListModel() truckListModel {
	return truckListModel{filter: newInput("filter by city, route...", 40)}
}

func (m appModel) visibleTrucks() []models.TruckPost {
	return m.services.MarketplaceService.FilterTrucks(m.trucks.items, m.trucks.filter.Value())
}

func (m appModel) updateTrucks(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.trucks.filterOn {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			m.trucks.filter.Blur()
			m.trucks.filterOn = false
			return m, nil
		}
		var cmd tea.Cmd
		m.trucks.filter, cmd = m.trucks.filter.Update(msg)
		m.trucks.idx = 0
		return m, cmd
	}

	visible := m.visibleTrucks()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.trucks.idx > 0 {
			m.trucks.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.trucks.idx < len(visible)-1 {
			m.trucks.idx++
		}
	case key.Matches(keyMsg, keys.filter):
		m.trucks.filterOn = true
		m.trucks.filter.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.newItem):
		m.formTruck = newFormTruckModel(nil)
		m.currentScreen = screenFormTruck
		m.returnScreen = screenTrucks
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if m.trucks.idx < len(visible) {
			post := visible[m.trucks.idx]
			m.formTruck = newFormTruckModel(&post)
			m.currentScreen = screenFormTruck
			m.returnScreen = screenTrucks
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if m.trucks.idx < len(visible) {
			post := visible[m.trucks.idx]
			m.showConfirm = true
			m.confirm.message = fmt.Sprintf("truck #%d %s", post.ID, post.CurrentCity)
			m.pendingDelete = m.cmdDeleteTruck(post.ID)
		}
	case key.Matches(keyMsg, keys.copy):
		if m.trucks.idx < len(visible) {
			return m, cmdCopyToClipboard(strconv.FormatInt(visible[m.trucks.idx].ID, 10))
		}
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) viewTrucks() string {
	st := m.st
	out := st.title.Render("Trucks") + "\n"
	out += uiDivider + "\n\n"
	out += "Filter │ [" + m.trucks.filter.View() + "]\n\n"

	visible := m.visibleTrucks()
	switch {
	case m.trucks.loading:
		out += "Loading...\n"
	case len(visible) == 0:
		out += "No truck listings\n"
	default:
		for i, post := range visible {
			cursor := "  "
			if i == m.trucks.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s#%-4d %s  %s %s  %s\n",
				cursor, post.ID,
				fitText(post.CurrentCity, 14),
				fitText(post.TruckType, 12), fmtTonnes(post.CapacityTonnes),
				fitText(post.PreferredRoute, 20))
		}
	}

	if m.trucks.status != "" {
		out += "\n" + st.status.Render(m.trucks.status) + "\n"
	}

	out += "\n" + st.help.Render("n post  e edit  d delete  c copy id  / filter  esc menu  q quit")
	return out
}
