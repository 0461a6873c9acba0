package tui

import (
	"context"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/mock"
	"github.com/logilink/logilink-client/internal/service"
	"github.com/logilink/logilink-client/internal/session"
	"github.com/logilink/logilink-client/internal/store"
	"github.com/logilink/logilink-client/models"
)

func newTestAppModel(t *testing.T) appModel {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	sessions := session.NewStore()
	themes := session.NewThemeStore()
	services := service.NewClientServices(&store.ClientStorages{}, backend, sessions, "terminal")

	return newAppModel(context.Background(), services, sessions, themes, config.ClientApp{Version: "test"})
}

// feed pushes one message through Update and unwraps the router model.
func feed(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(appModel)
}

func TestUpdate_OTPEntryWaitsForDelivery(t *testing.T) {
	m := newTestAppModel(t)
	require.Equal(t, screenWelcome, m.currentScreen)

	// a known number requests a code but does not open code entry yet
	m = feed(t, m, phoneCheckedMsg{phone: "9876543210", exists: true})
	assert.Equal(t, screenWelcome, m.currentScreen)
	assert.True(t, m.otp.sending)

	// code entry opens once delivery is confirmed
	m = feed(t, m, otpSentMsg{challenge: models.OTPChallenge{EchoCode: "1234"}})
	assert.Equal(t, screenOTP, m.currentScreen)
	assert.Equal(t, "1234", m.otp.challenge.EchoCode)
}

func TestUpdate_FailedDeliveryKeepsWelcome(t *testing.T) {
	m := newTestAppModel(t)

	m = feed(t, m, phoneCheckedMsg{phone: "9876543210", exists: true})
	m = feed(t, m, otpSentMsg{err: adapter.ErrOTPNotDelivered})

	assert.Equal(t, screenWelcome, m.currentScreen)
	assert.True(t, m.showError)
	assert.Empty(t, m.welcome.status)
}

func TestUpdate_FailedDeliveryAfterRegistrationKeepsForm(t *testing.T) {
	m := newTestAppModel(t)

	m = feed(t, m, phoneCheckedMsg{phone: "9000000001", exists: false})
	require.Equal(t, screenRegister, m.currentScreen)

	m = feed(t, m, registeredMsg{user: models.User{MobileNumber: "9000000001"}})
	assert.Equal(t, screenRegister, m.currentScreen)

	m = feed(t, m, otpSentMsg{err: adapter.ErrOTPNotDelivered})
	assert.Equal(t, screenRegister, m.currentScreen)
	assert.True(t, m.showError)
	assert.Empty(t, m.register.status)
}

func TestUpdate_ResendFailureStaysOnOTPEntry(t *testing.T) {
	m := newTestAppModel(t)

	m = feed(t, m, phoneCheckedMsg{phone: "9876543210", exists: true})
	m = feed(t, m, otpSentMsg{challenge: models.OTPChallenge{EchoCode: "1234"}})
	require.Equal(t, screenOTP, m.currentScreen)

	// a failed resend leaves the outstanding challenge usable
	m = feed(t, m, otpSentMsg{err: adapter.ErrOTPNotDelivered})
	assert.Equal(t, screenOTP, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, "1234", m.otp.challenge.EchoCode)
}

func TestHumanizeError_OTPLengthTracksConstant(t *testing.T) {
	msg := humanizeError(service.ErrInvalidOTPLength)
	assert.Contains(t, msg, strconv.Itoa(models.OTPLength))
}
