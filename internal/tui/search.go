package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// searchFilters are the filterType values in cycling order; the empty
// string means all kinds.
var searchFilters = []string{"", models.ListingKindLoad, models.ListingKindTruck, models.ListingKindTrip}

type searchModel struct {
	keyword   textinput.Model
	filterIdx int
	searching bool
	searched  bool
	result    models.SearchResult
}

func newSearchModel() searchModel {
	keyword := newInput("city, material, route...", 40)
	keyword.Focus()
	return searchModel{keyword: keyword}
}

func (m searchModel) filterLabel() string {
	if searchFilters[m.filterIdx] == "" {
		return "all"
	}
	return searchFilters[m.filterIdx]
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.search.filterIdx = (m.search.filterIdx + 1) % len(searchFilters)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.search.filterIdx = (m.search.filterIdx - 1 + len(searchFilters)) % len(searchFilters)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.search.searching {
				return m, nil
			}
			m.search.searching = true
			return m, m.cmdSearch(models.SearchQuery{
				Keyword:    strings.TrimSpace(m.search.keyword.Value()),
				FilterType: searchFilters[m.search.filterIdx],
			})
		}
	}

	var cmd tea.Cmd
	m.search.keyword, cmd = m.search.keyword.Update(msg)
	return m, cmd
}

func (m appModel) viewSearch() string {
	st := m.st
	s := m.search

	out := st.title.Render("Search marketplace") + "\n"
	out += uiDivider + "\n\n"
	out += "Keyword │ [" + s.keyword.View() + "]\n"
	out += "Kind    │ " + s.filterLabel() + "\n"

	switch {
	case s.searching:
		out += "\nSearching...\n"
	case s.searched:
		out += "\n" + viewSearchResult(s.result)
	}

	out += "\n" + st.help.Render("enter search  tab kind  esc menu")
	return out
}

func viewSearchResult(result models.SearchResult) string {
	total := len(result.Loads) + len(result.Trucks) + len(result.Trips)
	if total == 0 {
		return "Nothing found\n"
	}

	var b strings.Builder
	if len(result.Loads) > 0 {
		b.WriteString("Loads\n")
		for _, post := range result.Loads {
			b.WriteString(fmt.Sprintf("  #%-4d %s → %s  %s %s  %s\n",
				post.ID, fitText(post.Origin, 14), fitText(post.Destination, 14),
				fitText(post.Material, 12), fmtTonnes(post.WeightTonnes), fmtMoney(post.OfferedPrice)))
		}
	}
	if len(result.Trucks) > 0 {
		b.WriteString("Trucks\n")
		for _, post := range result.Trucks {
			b.WriteString(fmt.Sprintf("  #%-4d %s  %s %s\n",
				post.ID, fitText(post.CurrentCity, 14), fitText(post.TruckType, 12), fmtTonnes(post.CapacityTonnes)))
		}
	}
	if len(result.Trips) > 0 {
		b.WriteString("Trips\n")
		for _, trip := range result.Trips {
			b.WriteString(fmt.Sprintf("  #%-4d %s → %s  %s\n",
				trip.ID, fitText(trip.Origin, 14), fitText(trip.Destination, 14), trip.Status))
		}
	}
	return b.String()
}
