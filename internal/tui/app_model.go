package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/service"
	"github.com/logilink/logilink-client/internal/session"
	"github.com/logilink/logilink-client/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenOTP
	screenRegister
	screenMenu
	screenLoads
	screenTrucks
	screenFormLoad
	screenFormTruck
	screenVehicles
	screenFormVehicle
	screenTrips
	screenFormTrip
	screenSearch
	screenCalcToll
	screenCalcMileage
	screenProfile
	screenFormProfile
)

// appModel is the router: one model that owns every screen and dispatches
// messages to the active one. Async results arrive as messages and are
// handled here so a screen switch can never race a pending command.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	sessions *session.Store
	themes   *session.ThemeStore
	appCfg   config.ClientApp
	st       styles

	currentScreen screen
	returnScreen  screen

	welcome     welcomeModel
	otp         otpModel
	register    registerModel
	menu        menuModel
	loads       loadListModel
	trucks      truckListModel
	formLoad    formLoadModel
	formTruck   formTruckModel
	vehicles    vehicleListModel
	formVehicle formVehicleModel
	trips       tripListModel
	formTrip    formTripModel
	search      searchModel
	calcToll    calcTollModel
	calcMileage calcMileageModel
	profile     profileModel
	formProfile formProfileModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete tea.Cmd
}

func newAppModel(ctx context.Context, services *service.ClientServices, sessions *session.Store, themes *session.ThemeStore, appCfg config.ClientApp) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		sessions:      sessions,
		themes:        themes,
		appCfg:        appCfg,
		st:            newStyles(themes.Get().Palette()),
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		loads:         newLoadListModel(),
		trucks:        newTruckListModel(),
	}

	// a rehydrated session skips the login flow entirely
	if sessions.Get().Authenticated() {
		m.currentScreen = screenMenu
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				cmd := m.pendingDelete
				m.pendingDelete = nil
				return m, cmd
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = nil
			}
			return m, nil
		}

	case phoneCheckedMsg:
		m.welcome.checking = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.exists {
			// code entry opens only once a code is actually out
			m.otp = newOTPModel(msg.phone)
			m.otp.sending = true
			m.welcome.status = "Sending code..."
			return m, m.cmdSendOTP(msg.phone)
		}
		m.register = newRegisterModel(msg.phone)
		m.register.status = "This number is not registered yet. Create an account to continue."
		m.currentScreen = screenRegister
		return m, textinput.Blink

	case otpSentMsg:
		m.otp.sending = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			// nothing went out, so the user stays where they were
			m.welcome.status = ""
			m.register.status = ""
			return m, nil
		}
		m.otp.challenge = msg.challenge
		m.otp.status = "Code sent"
		if m.currentScreen != screenOTP {
			m.currentScreen = screenOTP
			return m, textinput.Blink
		}
		return m, nil

	case registeredMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.otp = newOTPModel(msg.user.MobileNumber)
		m.otp.sending = true
		m.register.status = "Account created. Sending code..."
		return m, m.cmdSendOTP(msg.user.MobileNumber)

	case loginDoneMsg:
		m.otp.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.menu = menuModel{status: "Logged in as " + msg.identity.User.FullName()}
		m.currentScreen = screenMenu
		return m, cmdClearStatus()

	case profileSavedMsg:
		m.formProfile.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.profile.status = "Profile saved"
		m.currentScreen = screenProfile
		return m, cmdClearStatus()

	case logoutDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m.resetToWelcome(), textinput.Blink

	case loadsLoadedMsg:
		m.loads.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.loads.items = msg.posts
		m.loads.idx = clampIndex(m.loads.idx, len(msg.posts))
		return m, nil

	case trucksLoadedMsg:
		m.trucks.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.trucks.items = msg.posts
		m.trucks.idx = clampIndex(m.trucks.idx, len(msg.posts))
		return m, nil

	case vehiclesLoadedMsg:
		m.vehicles.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.vehicles.items = msg.vehicles
		m.vehicles.idx = clampIndex(m.vehicles.idx, len(msg.vehicles))
		return m, nil

	case tripsLoadedMsg:
		m.trips.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.trips.items = msg.trips
		m.trips.idx = clampIndex(m.trips.idx, len(msg.trips))
		return m, nil

	case listingSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m.afterListingSaved(msg.id)

	case listingDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m.reloadCurrentList()

	case searchDoneMsg:
		m.search.searching = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.search.searched = true
		m.search.result = msg.result
		return m, nil

	case copiedMsg:
		m.setListStatus("Copied listing id")
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.menu.status = ""
		m.loads.status = ""
		m.trucks.status = ""
		m.vehicles.status = ""
		m.trips.status = ""
		m.profile.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenOTP:
		return m.updateOTP(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenLoads:
		return m.updateLoads(msg)
	case screenTrucks:
		return m.updateTrucks(msg)
	case screenFormLoad:
		return m.updateFormLoad(msg)
	case screenFormTruck:
		return m.updateFormTruck(msg)
	case screenVehicles:
		return m.updateVehicles(msg)
	case screenFormVehicle:
		return m.updateFormVehicle(msg)
	case screenTrips:
		return m.updateTrips(msg)
	case screenFormTrip:
		return m.updateFormTrip(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenCalcToll:
		return m.updateCalcToll(msg)
	case screenCalcMileage:
		return m.updateCalcMileage(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenFormProfile:
		return m.updateFormProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.view(m.st, m.appCfg.Version)
	case screenOTP:
		body = m.otp.view(m.st)
	case screenRegister:
		body = m.register.view(m.st)
	case screenMenu:
		body = m.viewMenu()
	case screenLoads:
		body = m.viewLoads()
	case screenTrucks:
		body = m.viewTrucks()
	case screenFormLoad:
		body = m.formLoad.view(m.st)
	case screenFormTruck:
		body = m.formTruck.view(m.st)
	case screenVehicles:
		body = m.viewVehicles()
	case screenFormVehicle:
		body = m.formVehicle.view(m.st)
	case screenTrips:
		body = m.viewTrips()
	case screenFormTrip:
		body = m.formTrip.view(m.st)
	case screenSearch:
		body = m.viewSearch()
	case screenCalcToll:
		body = m.calcToll.view(m.st)
	case screenCalcMileage:
		body = m.calcMileage.view(m.st)
	case screenProfile:
		body = m.viewProfile()
	case screenFormProfile:
		body = m.formProfile.view(m.st)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.view(m.st)
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.view(m.st)
	}

	return m.st.app.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.formLoad.submitting = v
	m.formTruck.submitting = v
	m.formVehicle.submitting = v
	m.formTrip.submitting = v
}

func (m *appModel) setListStatus(status string) {
	switch m.currentScreen {
	case screenLoads:
		m.loads.status = status
	case screenTrucks:
		m.trucks.status = status
	case screenVehicles:
		m.vehicles.status = status
	case screenTrips:
		m.trips.status = status
	}
}

// afterListingSaved navigates back from the form that produced the save
// and reloads its list.
func (m appModel) afterListingSaved(id int64) (tea.Model, tea.Cmd) {
	saved := fmt.Sprintf("Saved listing #%d", id)
	switch m.currentScreen {
	case screenFormLoad:
		m.currentScreen = screenLoads
		m.loads.loading = true
		m.loads.status = saved
		return m, tea.Batch(m.cmdLoadLoads(), cmdClearStatus())
	case screenFormTruck:
		m.currentScreen = screenTrucks
		m.trucks.loading = true
		m.trucks.status = saved
		return m, tea.Batch(m.cmdLoadTrucks(), cmdClearStatus())
	case screenFormVehicle:
		m.currentScreen = screenVehicles
		m.vehicles.loading = true
		m.vehicles.status = saved
		return m, tea.Batch(m.cmdLoadVehicles(), cmdClearStatus())
	case screenFormTrip:
		m.currentScreen = screenTrips
		m.trips.loading = true
		m.trips.status = saved
		return m, tea.Batch(m.cmdLoadTrips(), cmdClearStatus())
	}
	return m, nil
}

func (m appModel) reloadCurrentList() (tea.Model, tea.Cmd) {
	switch m.currentScreen {
	case screenLoads:
		m.loads.loading = true
		return m, m.cmdLoadLoads()
	case screenTrucks:
		m.trucks.loading = true
		return m, m.cmdLoadTrucks()
	case screenVehicles:
		m.vehicles.loading = true
		return m, m.cmdLoadVehicles()
	}
	return m, nil
}

// resetToWelcome drops every screen back to its initial state after a
// logout.
func (m appModel) resetToWelcome() appModel {
	next := newAppModel(m.ctx, m.services, m.sessions, m.themes, m.appCfg)
	next.st = m.st
	next.currentScreen = screenWelcome
	return next
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// humanizeError rewrites well-known failures into something the overlay
// can show; everything else passes through as-is.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Your session has expired. Log in again"
	case errors.Is(err, adapter.ErrOTPNotDelivered):
		return "The code could not be delivered. Try again"
	case errors.Is(err, service.ErrLoginOnServer):
		return "The code was not accepted. Request a new one"
	case errors.Is(err, service.ErrInvalidOTPLength):
		return fmt.Sprintf("The code has exactly %d digits", models.OTPLength)
	case errors.Is(err, service.ErrInvalidMobileNumber):
		return "Enter a valid 10-digit mobile number"
	case errors.Is(err, session.ErrFlowOrder):
		return "Start over from the phone number screen"
	default:
		return err.Error()
	}
}
