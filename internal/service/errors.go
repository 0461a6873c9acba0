package service

import "errors"

var (
	ErrInvalidMobileNumber = errors.New("invalid mobile number")
	ErrInvalidOTPLength    = errors.New("one-time code has wrong length")
	ErrNotAuthenticated    = errors.New("not authenticated")

	ErrCheckMobileOnServer = errors.New("mobile number check failed on server")
	ErrSendOTPOnServer     = errors.New("one-time code request failed on server")
	ErrLoginOnServer       = errors.New("login failed on server")
	ErrRegisterOnServer    = errors.New("registration failed on server")

	ErrInvalidFilterType = errors.New("invalid filter type")

	ErrInvalidDistance     = errors.New("distance must be positive")
	ErrInvalidFuelVolume   = errors.New("fuel volume must be positive")
	ErrInvalidFuelPrice    = errors.New("fuel price must not be negative")
	ErrInvalidPlazaCount   = errors.New("plaza count must not be negative")
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")
)
