package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// tripListModel shows the account's trip records. Trips are append-only:
// there is no edit or delete, matching the backend contract.
type tripListModel struct {
	items   []models.Trip
	idx     int
	loading bool
	status  string
}

func (m appModel) updateTrips(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.trips.idx > 0 {
			m.trips.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.trips.idx < len(m.trips.items)-1 {
			m.trips.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.formTrip = newFormTripModel()
		m.currentScreen = screenFormTrip
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) viewTrips() string {
	st := m.st
	out := st.title.Render("My trips") + "\n"
	out += uiDivider + "\n\n"

	switch {
	case m.trips.loading:
		out += "Loading...\n"
	case len(m.trips.items) == 0:
		out += "No trips yet\n"
	default:
		for i, trip := range m.trips.items {
			cursor := "  "
			if i == m.trips.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s#%-4d %s → %s  %s  %s\n",
				cursor, trip.ID,
				fitText(trip.Origin, 14), fitText(trip.Destination, 14),
				trip.StartDate, trip.Status)
		}
	}

	if m.trips.status != "" {
		out += "\n" + st.status.Render(m.trips.status) + "\n"
	}

	out += "\n" + st.help.Render("n record  esc menu  q quit")
	return out
}

// ── trip form ───────────────────────────────────────────────────────────────

var formTripLabels = []string{
	"Vehicle ID", "Origin", "Destination", "Start date",
}

type formTripModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormTripModel() formTripModel {
	inputs := []textinput.Model{
		newInput("vehicle id from the fleet screen", 10),
		newInput("origin city", 40),
		newInput("destination city", 40),
		newInput("YYYY-MM-DD", 10),
	}
	inputs[0].Focus()
	return formTripModel{inputs: inputs}
}

func (m formTripModel) toTrip() (models.Trip, error) {
	vehicleID, err := parseIntField(m.inputs[0].Value(), "Vehicle ID")
	if err != nil {
		return models.Trip{}, err
	}

	return models.Trip{
		VehicleID:   vehicleID,
		Origin:      strings.TrimSpace(m.inputs[1].Value()),
		Destination: strings.TrimSpace(m.inputs[2].Value()),
		StartDate:   strings.TrimSpace(m.inputs[3].Value()),
	}, nil
}

func (m appModel) updateFormTrip(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenTrips
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formTrip.focus = cycleFocus(m.formTrip.inputs, m.formTrip.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formTrip.focus = cycleFocus(m.formTrip.inputs, m.formTrip.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formTrip.submitting {
				return m, nil
			}
			trip, err := m.formTrip.toTrip()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			if trip.Origin == "" || trip.Destination == "" {
				m.showErrorf("Origin and destination are required")
				return m, nil
			}
			m.formTrip.submitting = true
			return m, m.cmdSaveTrip(trip)
		}
	}

	var cmd tea.Cmd
	m.formTrip.inputs[m.formTrip.focus], cmd = m.formTrip.inputs[m.formTrip.focus].Update(msg)
	return m, cmd
}

func (m formTripModel) view(st styles) string {
	out := st.title.Render("Record a trip") + "\n"
	out += uiDivider + "\n\n"
	out += renderForm(formTripLabels, m.inputs)

	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + st.help.Render("enter save  tab next field  esc cancel")
	return out
}
