package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

type profileModel struct {
	status string
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.edit):
		if user := m.sessions.Get().User; user != nil {
			m.formProfile = newFormProfileModel(*user)
			m.currentScreen = screenFormProfile
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) viewProfile() string {
	st := m.st
	out := st.title.Render("Profile") + "\n"
	out += uiDivider + "\n\n"

	user := m.sessions.Get().User
	if user == nil {
		out += "Not logged in\n"
	} else {
		rows := [][2]string{
			{"Name", user.FullName()},
			{"Mobile", user.MobileNumber},
			{"Email", user.Email},
			{"Address", user.Address},
			{"City", user.City},
			{"State", user.State},
			{"Pincode", user.Pincode},
		}
		for _, row := range rows {
			value := row[1]
			if value == "" {
				value = "-"
			}
			out += fmt.Sprintf("%-7s │ %s\n", row[0], value)
		}
	}

	if m.profile.status != "" {
		out += "\n" + st.status.Render(m.profile.status) + "\n"
	}

	out += "\n" + st.help.Render("e edit  l log out  esc menu  q quit")
	return out
}

// ── profile form ────────────────────────────────────────────────────────────

var formProfileLabels = []string{
	"First name", "Last name", "Email", "Address", "City", "State", "Pincode",
}

type formProfileModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormProfileModel(user models.User) formProfileModel {
	inputs := []textinput.Model{
		newInput("first name", 40),
		newInput("last name", 40),
		newInput("email", 80),
		newInput("address", 120),
		newInput("city", 40),
		newInput("state", 40),
		newInput("pincode", 6),
	}
	inputs[0].SetValue(user.FirstName)
	inputs[1].SetValue(user.LastName)
	inputs[2].SetValue(user.Email)
	inputs[3].SetValue(user.Address)
	inputs[4].SetValue(user.City)
	inputs[5].SetValue(user.State)
	inputs[6].SetValue(user.Pincode)
	inputs[0].Focus()
	return formProfileModel{inputs: inputs}
}

// toUser carries only the editable fields; the backend keeps everything
// the update leaves blank.
func (m formProfileModel) toUser() models.User {
	return models.User{
		FirstName: strings.TrimSpace(m.inputs[0].Value()),
		LastName:  strings.TrimSpace(m.inputs[1].Value()),
		Email:     strings.TrimSpace(m.inputs[2].Value()),
		Address:   strings.TrimSpace(m.inputs[3].Value()),
		City:      strings.TrimSpace(m.inputs[4].Value()),
		State:     strings.TrimSpace(m.inputs[5].Value()),
		Pincode:   strings.TrimSpace(m.inputs[6].Value()),
	}
}

func (m appModel) updateFormProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenProfile
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formProfile.focus = cycleFocus(m.formProfile.inputs, m.formProfile.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formProfile.focus = cycleFocus(m.formProfile.inputs, m.formProfile.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formProfile.submitting {
				return m, nil
			}
			m.formProfile.submitting = true
			return m, m.cmdUpdateProfile(m.formProfile.toUser())
		}
	}

	var cmd tea.Cmd
	m.formProfile.inputs[m.formProfile.focus], cmd = m.formProfile.inputs[m.formProfile.focus].Update(msg)
	return m, cmd
}

func (m formProfileModel) view(st styles) string {
	out := st.title.Render("Edit profile") + "\n"
	out += uiDivider + "\n\n"
	out += renderForm(formProfileLabels, m.inputs)

	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + st.help.Render("enter save  tab next field  esc cancel")
	return out
}
