package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

var formTruckLabels = []string{
	"Current city", "Preferred route", "Truck type", "Capacity (t)", "Vehicle number", "Available from", "Contact phone",
}

type formTruckModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	editing    bool
	original   models.TruckPost
}

func newFormTruckModel(post *models.TruckPost) formTruckModel {
	inputs := []textinput.Model{
		newInput("city the truck is in", 40),
		newInput("e.g. Pune - Nagpur", 60),
		newInput("open / container / trailer...", 30),
		newInput("capacity in tonnes", 10),
		newInput("e.g. MH12AB1234", 12),
		newInput("YYYY-MM-DD", 10),
		newInput("contact phone", 10),
	}

	m := formTruckModel{inputs: inputs}
	if post != nil {
		m.editing = true
		m.original = *post
		inputs[0].SetValue(post.CurrentCity)
		inputs[1].SetValue(post.PreferredRoute)
		inputs[2].SetValue(post.TruckType)
		inputs[3].SetValue(strconv.FormatFloat(post.CapacityTonnes, 'f', -1, 64))
		inputs[4].SetValue(post.VehicleNumber)
		inputs[5].SetValue(post.AvailableFrom)
		inputs[6].SetValue(post.ContactPhone)
	}
	inputs[0].Focus()
	return m
}

func (m formTruckModel) toPost() (models.TruckPost, error) {
	capacity, err := parseFloatField(m.inputs[3].Value(), "Capacity")
	if err != nil {
		return models.TruckPost{}, err
	}

	post := m.original
	post.CurrentCity = strings.TrimSpace(m.inputs[0].Value())
	post.PreferredRoute = strings.TrimSpace(m.inputs[1].Value())
	post.TruckType = strings.TrimSpace(m.inputs[2].Value())
	post.CapacityTonnes = capacity
	post.VehicleNumber = strings.TrimSpace(m.inputs[4].Value())
	post.AvailableFrom = strings.TrimSpace(m.inputs[5].Value())
	post.ContactPhone = strings.TrimSpace(m.inputs[6].Value())
	return post, nil
}

func (m appModel) updateFormTruck(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.returnScreen
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formTruck.focus = cycleFocus(m.formTruck.inputs, m.formTruck.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formTruck.focus = cycleFocus(m.formTruck.inputs, m.formTruck.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formTruck.submitting {
				return m, nil
			}
			post, err := m.formTruck.toPost()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			if post.CurrentCity == "" || post.TruckType == "" {
				m.showErrorf("Current city and truck type are required")
				return m, nil
			}
			m.formTruck.submitting = true
			return m, m.cmdSaveTruck(post, m.formTruck.editing)
		}
	}

	var cmd tea.Cmd
	m.formTruck.inputs[m.formTruck.focus], cmd = m.formTruck.inputs[m.formTruck.focus].Update(msg)
	return m, cmd
}

func (m formTruckModel) view(st styles) string {
	title := "Post a truck"
	if m.editing {
		title = "Edit truck"
	}

	out := st.title.Render(title) + "\n"
	out += uiDivider + "\n\n"
	out += renderForm(formTruckLabels, m.inputs)

	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + st.help.Render("enter save  tab next field  esc cancel")
	return out
}
