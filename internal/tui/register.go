package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

var registerLabels = []string{
	"First name", "Last name", "Mobile", "Email", "City", "State", "Pincode",
}

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newRegisterModel(phone string) registerModel {
	inputs := []textinput.Model{
		newInput("first name", 40),
		newInput("last name", 40),
		newInput("10-digit mobile number", 10),
		newInput("email (optional)", 80),
		newInput("city", 40),
		newInput("state", 40),
		newInput("pincode (optional)", 6),
	}
	inputs[2].SetValue(phone)
	inputs[0].Focus()
	return registerModel{inputs: inputs}
}

func (m registerModel) toForm(deviceType, deviceToken string) models.RegistrationForm {
	return models.RegistrationForm{
		FirstName:    strings.TrimSpace(m.inputs[0].Value()),
		LastName:     strings.TrimSpace(m.inputs[1].Value()),
		MobileNumber: strings.TrimSpace(m.inputs[2].Value()),
		Email:        strings.TrimSpace(m.inputs[3].Value()),
		City:         strings.TrimSpace(m.inputs[4].Value()),
		State:        strings.TrimSpace(m.inputs[5].Value()),
		Pincode:      strings.TrimSpace(m.inputs[6].Value()),
		DeviceType:   deviceType,
		DeviceToken:  deviceToken,
	}
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			m.welcome = newWelcomeModel()
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			form := m.register.toForm(m.appCfg.DeviceType, "")
			if form.FirstName == "" || form.MobileNumber == "" {
				m.showErrorf("First name and mobile number are required")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(form)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m registerModel) view(st styles) string {
	out := st.title.Render("Create an account") + "\n"
	out += uiDivider + "\n\n"

	if m.status != "" {
		out += m.status + "\n\n"
	}

	out += renderForm(registerLabels, m.inputs)

	if m.submitting {
		out += "\nRegistering...\n"
	}

	out += "\n" + st.help.Render("enter submit  tab next field  esc back")
	return out
}
