package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// loadListModel is the load board: every open load listing plus a local
// keyword filter that never touches the network.
type loadListModel struct {
	items    []models.LoadPost
	idx      int
	loading  bool
	filter   textinput.Model
	filterOn bool
	status   string
}

func newLoadListModel() loadListModel {
	return loadListModel{filter: newInput("filter by city, material...", 40)}
}

func (m appModel) visibleLoads() []models.LoadPost {
	return m.services.MarketplaceService.FilterLoads(m.loads.items, m.loads.filter.Value())
}

func (m appModel) updateLoads(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.loads.filterOn {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			m.loads.filter.Blur()
			m.loads.filterOn = false
			return m, nil
		}
		var cmd tea.Cmd
		m.loads.filter, cmd = m.loads.filter.Update(msg)
		m.loads.idx = 0
		return m, cmd
	}

	visible := m.visibleLoads()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.loads.idx > 0 {
			m.loads.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.loads.idx < len(visible)-1 {
			m.loads.idx++
		}
	case key.Matches(keyMsg, keys.filter):
		m.loads.filterOn = true
		m.loads.filter.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.newItem):
		m.formLoad = newFormLoadModel(nil)
		m.currentScreen = screenFormLoad
		m.returnScreen = screenLoads
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if m.loads.idx < len(visible) {
			post := visible[m.loads.idx]
			m.formLoad = newFormLoadModel(&post)
			m.currentScreen = screenFormLoad
			m.returnScreen = screenLoads
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if m.loads.idx < len(visible) {
			post := visible[m.loads.idx]
			m.showConfirm = true
			m.confirm.message = fmt.Sprintf("load #%d %s → %s", post.ID, post.Origin, post.Destination)
			m.pendingDelete = m.cmdDeleteLoad(post.ID)
		}
	case key.Matches(keyMsg, keys.copy):
		if m.loads.idx < len(visible) {
			return m, cmdCopyToClipboard(strconv.FormatInt(visible[m.loads.idx].ID, 10))
		}
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) viewLoads() string {
	st := m.st
	out := st.title.Render("Loads") + "\n"
	out += uiDivider + "\n\n"
	out += "Filter │ [" + m.loads.filter.View() + "]\n\n"

	visible := m.visibleLoads()
	switch {
	case m.loads.loading:
		out += "Loading...\n"
	case len(visible) == 0:
		out += "No load listings\n"
	default:
		for i, post := range visible {
			cursor := "  "
			if i == m.loads.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s#%-4d %s → %s  %s %s  %s\n",
				cursor, post.ID,
				fitText(post.Origin, 14), fitText(post.Destination, 14),
				fitText(post.Material, 12), fmtTonnes(post.WeightTonnes),
				fmtMoney(post.OfferedPrice))
		}
	}

	if m.loads.status != "" {
		out += "\n" + st.status.Render(m.loads.status) + "\n"
	}

	out += "\n" + st.help.Render("n post  e edit  d delete  c copy id  / filter  esc menu  q quit")
	return out
}
