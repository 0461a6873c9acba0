package tui

import "github.com/logilink/logilink-client/models"

type phoneCheckedMsg struct {
	phone  string
	exists bool
	err    error
}

type otpSentMsg struct {
	challenge models.OTPChallenge
	err       error
}

type loginDoneMsg struct {
	identity models.Identity
	err      error
}

type registeredMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct {
	err error
}

type loadsLoadedMsg struct {
	posts []models.LoadPost
	err   error
}

type trucksLoadedMsg struct {
	posts []models.TruckPost
	err   error
}

type vehiclesLoadedMsg struct {
	vehicles []models.Vehicle
	err      error
}

type tripsLoadedMsg struct {
	trips []models.Trip
	err   error
}

type listingSavedMsg struct {
	id  int64
	err error
}

type listingDeletedMsg struct {
	err error
}

type searchDoneMsg struct {
	result models.SearchResult
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
