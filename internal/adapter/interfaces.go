// Package adapter provides the transport layer for communicating with the
// logilink marketplace backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/logilink/logilink-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the
// marketplace backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// Every operation performs exactly one request: no retries, no client-side
// rate limiting, no response caching.
type BackendAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful login and during
	// session rehydration.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// CheckMobile reports whether a phone number is already registered.
	CheckMobile(ctx context.Context, mobileNumber string) (bool, error)

	// SendOTP asks the backend to deliver a one-time code to the phone
	// number. A 2xx response whose delivery-confirmation field is false is
	// returned as [ErrOTPNotDelivered].
	SendOTP(ctx context.Context, mobileNumber string) (models.SendOTPResponse, error)

	// LoginOTP exchanges a phone number and one-time code for the
	// identity payload. The adapter stores the returned access token via
	// SetToken on success.
	LoginOTP(ctx context.Context, req models.LoginOTPRequest) (models.Identity, error)

	// Register creates a new account and returns the created user record.
	Register(ctx context.Context, form models.RegistrationForm) (models.User, error)

	// UpdateProfile pushes changed profile fields and returns the updated
	// user record. Requires a valid bearer token.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// States and Cities fetch the reference lists.
	States(ctx context.Context) ([]models.State, error)
	Cities(ctx context.Context) ([]models.City, error)

	// Load-availability listings. All require a valid bearer token.
	ListLoads(ctx context.Context) ([]models.LoadPost, error)
	CreateLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error)
	UpdateLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error)
	DeleteLoad(ctx context.Context, id int64) error

	// Driver/truck-availability listings. All require a valid bearer token.
	ListTrucks(ctx context.Context) ([]models.TruckPost, error)
	CreateTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error)
	UpdateTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error)
	DeleteTruck(ctx context.Context, id int64) error

	// Trip records. Require a valid bearer token.
	ListTrips(ctx context.Context) ([]models.Trip, error)
	CreateTrip(ctx context.Context, trip models.Trip) (models.Trip, error)

	// Vehicle records. Require a valid bearer token.
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	CreateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error

	// Search runs the marketplace keyword search.
	Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error)
}
