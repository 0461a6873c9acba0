package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/logilink/logilink-client/models"
)

// Async commands. Each closure captures the context and the service it
// needs so the returned function carries no reference to the model value.

func (m appModel) cmdCheckPhone(phone string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		exists, err := auth.CheckPhone(ctx, phone)
		return phoneCheckedMsg{phone: phone, exists: exists, err: err}
	}
}

func (m appModel) cmdSendOTP(phone string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		challenge, err := auth.RequestOTP(ctx, phone)
		return otpSentMsg{challenge: challenge, err: err}
	}
}

func (m appModel) cmdVerifyOTP(phone, code string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		identity, err := auth.VerifyOTP(ctx, phone, code)
		return loginDoneMsg{identity: identity, err: err}
	}
}

func (m appModel) cmdRegister(form models.RegistrationForm) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Register(ctx, form)
		return registeredMsg{user: user, err: err}
	}
}

func (m appModel) cmdUpdateProfile(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		updated, err := auth.UpdateProfile(ctx, user)
		return profileSavedMsg{user: updated, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadLoads() tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		posts, err := market.Loads(ctx)
		return loadsLoadedMsg{posts: posts, err: err}
	}
}

func (m appModel) cmdLoadTrucks() tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		posts, err := market.Trucks(ctx)
		return trucksLoadedMsg{posts: posts, err: err}
	}
}

func (m appModel) cmdLoadVehicles() tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		vehicles, err := market.Vehicles(ctx)
		return vehiclesLoadedMsg{vehicles: vehicles, err: err}
	}
}

func (m appModel) cmdLoadTrips() tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		trips, err := market.Trips(ctx)
		return tripsLoadedMsg{trips: trips, err: err}
	}
}

func (m appModel) cmdSaveLoad(post models.LoadPost, editing bool) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		var (
			saved models.LoadPost
			err   error
		)
		if editing {
			saved, err = market.UpdateLoad(ctx, post)
		} else {
			saved, err = market.PostLoad(ctx, post)
		}
		return listingSavedMsg{id: saved.ID, err: err}
	}
}

func (m appModel) cmdSaveTruck(post models.TruckPost, editing bool) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		var (
			saved models.TruckPost
			err   error
		)
		if editing {
			saved, err = market.UpdateTruck(ctx, post)
		} else {
			saved, err = market.PostTruck(ctx, post)
		}
		return listingSavedMsg{id: saved.ID, err: err}
	}
}

func (m appModel) cmdSaveVehicle(v models.Vehicle, editing bool) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		var (
			saved models.Vehicle
			err   error
		)
		if editing {
			saved, err = market.UpdateVehicle(ctx, v)
		} else {
			saved, err = market.AddVehicle(ctx, v)
		}
		return listingSavedMsg{id: saved.ID, err: err}
	}
}

func (m appModel) cmdSaveTrip(trip models.Trip) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		saved, err := market.RecordTrip(ctx, trip)
		return listingSavedMsg{id: saved.ID, err: err}
	}
}

func (m appModel) cmdDeleteLoad(id int64) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		return listingDeletedMsg{err: market.RemoveLoad(ctx, id)}
	}
}

func (m appModel) cmdDeleteTruck(id int64) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		return listingDeletedMsg{err: market.RemoveTruck(ctx, id)}
	}
}

func (m appModel) cmdDeleteVehicle(id int64) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		return listingDeletedMsg{err: market.RemoveVehicle(ctx, id)}
	}
}

func (m appModel) cmdSearch(q models.SearchQuery) tea.Cmd {
	ctx := m.ctx
	market := m.services.MarketplaceService
	return func() tea.Msg {
		result, err := market.Search(ctx, q)
		return searchDoneMsg{result: result, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return listingSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
