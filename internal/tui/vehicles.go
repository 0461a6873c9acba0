package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// vehicleListModel is the fleet screen: trucks registered under the
// account, the pool trip records draw from.
type vehicleListModel struct {
	items   []models.Vehicle
	idx     int
	loading bool
	status  string
}

func (m appModel) updateVehicles(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.vehicles.idx > 0 {
			m.vehicles.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.vehicles.idx < len(m.vehicles.items)-1 {
			m.vehicles.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.formVehicle = newFormVehicleModel(nil)
		m.currentScreen = screenFormVehicle
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.edit):
		if m.vehicles.idx < len(m.vehicles.items) {
			v := m.vehicles.items[m.vehicles.idx]
			m.formVehicle = newFormVehicleModel(&v)
			m.currentScreen = screenFormVehicle
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if m.vehicles.idx < len(m.vehicles.items) {
			v := m.vehicles.items[m.vehicles.idx]
			m.showConfirm = true
			m.confirm.message = fmt.Sprintf("vehicle %s", v.VehicleNumber)
			m.pendingDelete = m.cmdDeleteVehicle(v.ID)
		}
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) viewVehicles() string {
	st := m.st
	out := st.title.Render("My vehicles") + "\n"
	out += uiDivider + "\n\n"

	switch {
	case m.vehicles.loading:
		out += "Loading...\n"
	case len(m.vehicles.items) == 0:
		out += "No vehicles yet\n"
	default:
		for i, v := range m.vehicles.items {
			cursor := "  "
			if i == m.vehicles.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s#%-4d %-12s %-12s %s\n",
				cursor, v.ID, v.VehicleNumber, fitText(v.TruckType, 12), fmtTonnes(v.CapacityTonnes))
		}
	}

	if m.vehicles.status != "" {
		out += "\n" + st.status.Render(m.vehicles.status) + "\n"
	}

	out += "\n" + st.help.Render("n add  e edit  d delete  esc menu  q quit")
	return out
}

// ── vehicle form ────────────────────────────────────────────────────────────

var formVehicleLabels = []string{
	"Vehicle number", "Truck type", "Capacity (t)", "Model", "Year",
}

type formVehicleModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	editing    bool
	original   models.Vehicle
}

func newFormVehicleModel(v *models.Vehicle) formVehicleModel {
	inputs := []textinput.Model{
		newInput("e.g. MH12AB1234", 12),
		newInput("open / container / trailer...", 30),
		newInput("capacity in tonnes", 10),
		newInput("model (optional)", 40),
		newInput("manufacture year (optional)", 4),
	}

	m := formVehicleModel{inputs: inputs}
	if v != nil {
		m.editing = true
		m.original = *v
		inputs[0].SetValue(v.VehicleNumber)
		inputs[1].SetValue(v.TruckType)
		inputs[2].SetValue(strconv.FormatFloat(v.CapacityTonnes, 'f', -1, 64))
		inputs[3].SetValue(v.Model)
		if v.ManufactureYear != 0 {
			inputs[4].SetValue(strconv.Itoa(v.ManufactureYear))
		}
	}
	inputs[0].Focus()
	return m
}

func (m formVehicleModel) toVehicle() (models.Vehicle, error) {
	capacity, err := parseFloatField(m.inputs[2].Value(), "Capacity")
	if err != nil {
		return models.Vehicle{}, err
	}
	year, err := parseIntField(m.inputs[4].Value(), "Year")
	if err != nil {
		return models.Vehicle{}, err
	}

	v := m.original
	v.VehicleNumber = strings.TrimSpace(m.inputs[0].Value())
	v.TruckType = strings.TrimSpace(m.inputs[1].Value())
	v.CapacityTonnes = capacity
	v.Model = strings.TrimSpace(m.inputs[3].Value())
	v.ManufactureYear = int(year)
	return v, nil
}

func (m appModel) updateFormVehicle(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenVehicles
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formVehicle.focus = cycleFocus(m.formVehicle.inputs, m.formVehicle.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formVehicle.focus = cycleFocus(m.formVehicle.inputs, m.formVehicle.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formVehicle.submitting {
				return m, nil
			}
			v, err := m.formVehicle.toVehicle()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			if v.VehicleNumber == "" {
				m.showErrorf("Vehicle number is required")
				return m, nil
			}
			m.formVehicle.submitting = true
			return m, m.cmdSaveVehicle(v, m.formVehicle.editing)
		}
	}

	var cmd tea.Cmd
	m.formVehicle.inputs[m.formVehicle.focus], cmd = m.formVehicle.inputs[m.formVehicle.focus].Update(msg)
	return m, cmd
}

func (m formVehicleModel) view(st styles) string {
	title := "Add a vehicle"
	if m.editing {
		title = "Edit vehicle"
	}

	out := st.title.Render(title) + "\n"
	out += uiDivider + "\n\n"
	out += renderForm(formVehicleLabels, m.inputs)

	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + st.help.Render("enter save  tab next field  esc cancel")
	return out
}
