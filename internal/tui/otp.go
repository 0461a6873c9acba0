package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// otpModel is the code entry screen for one login attempt. It exists from
// the moment a code is requested until the code is verified or the user
// backs out; a resend replaces the challenge in place.
type otpModel struct {
	phone      string
	challenge  models.OTPChallenge
	code       textinput.Model
	sending    bool
	submitting bool
	status     string
}

func newOTPModel(phone string) otpModel {
	code := newInput(strings.Repeat("0", models.OTPLength), models.OTPLength)
	code.Width = models.OTPLength + 2
	code.Focus()
	return otpModel{phone: phone, code: code}
}

func (m appModel) updateOTP(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			m.welcome = newWelcomeModel()
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.resend):
			if m.otp.sending || m.otp.submitting {
				return m, nil
			}
			m.otp.sending = true
			m.otp.status = ""
			return m, m.cmdSendOTP(m.otp.phone)
		case key.Matches(keyMsg, keys.enter):
			if m.otp.submitting {
				return m, nil
			}
			code := strings.TrimSpace(m.otp.code.Value())
			if len(code) != models.OTPLength {
				m.showErrorf(fmt.Sprintf("The code has exactly %d digits", models.OTPLength))
				return m, nil
			}
			m.otp.submitting = true
			return m, m.cmdVerifyOTP(m.otp.phone, code)
		}
	}

	var cmd tea.Cmd
	m.otp.code, cmd = m.otp.code.Update(msg)
	return m, cmd
}

func (m otpModel) view(st styles) string {
	out := st.title.Render("One-time code") + "\n"
	out += uiDivider + "\n\n"
	out += "A code was sent to " + m.phone + "\n\n"
	out += "Code │ [" + m.code.View() + "]\n"

	// non-production backends echo the code back for automated logins
	if m.challenge.EchoCode != "" {
		out += "\n" + st.help.Render("dev code: "+m.challenge.EchoCode) + "\n"
	}

	switch {
	case m.submitting:
		out += "\nVerifying...\n"
	case m.sending:
		out += "\nSending a new code...\n"
	case m.status != "":
		out += "\n" + st.status.Render(m.status) + "\n"
	}

	out += "\n" + st.help.Render("enter verify  ctrl+r resend  esc back")
	return out
}
