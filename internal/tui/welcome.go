package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// welcomeModel is the phone entry screen: the single door into the app for
// an anonymous session.
type welcomeModel struct {
	phone    textinput.Model
	checking bool
	status   string
}

func newWelcomeModel() welcomeModel {
	phone := newInput("10-digit mobile number", 10)
	phone.Focus()
	return welcomeModel{phone: phone}
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.welcome.checking {
				return m, nil
			}
			phone := strings.TrimSpace(m.welcome.phone.Value())
			if phone == "" {
				m.showErrorf("Enter your mobile number")
				return m, nil
			}
			m.welcome.checking = true
			m.welcome.status = ""
			return m, m.cmdCheckPhone(phone)
		}
	}

	var cmd tea.Cmd
	m.welcome.phone, cmd = m.welcome.phone.Update(msg)
	return m, cmd
}

func (m welcomeModel) view(st styles, version string) string {
	out := st.title.Render("LogiLink") + "  " + st.help.Render(version) + "\n"
	out += uiDivider + "\n\n"
	out += "Log in with your mobile number\n\n"
	out += "Mobile │ [" + m.phone.View() + "]\n"

	if m.checking {
		out += "\nChecking...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + st.help.Render("enter continue  q quit")
	return out
}
