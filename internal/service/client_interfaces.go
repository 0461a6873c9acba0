package service

import (
	"context"
	"time"

	"github.com/logilink/logilink-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for phone/OTP
// authentication and profile management. Implementations own the login flow
// guard and the session store: every method that changes identity applies
// the change as one atomic session transition and persists the result.
type ClientAuthService interface {
	// CheckPhone reports whether the mobile number is registered. A
	// registered number starts a fresh login attempt; an unregistered one
	// leaves the flow untouched so the UI can branch to registration.
	// Returns [ErrInvalidMobileNumber] before any network call when the
	// number is malformed.
	CheckPhone(ctx context.Context, mobileNumber string) (bool, error)

	// RequestOTP asks the backend to deliver a one-time code. Rejected
	// with [session.ErrFlowOrder] unless a successful CheckPhone for the
	// same number came first. A repeat request supersedes the previous
	// challenge. A delivery the backend did not confirm is an error and
	// leaves the flow where it was.
	RequestOTP(ctx context.Context, mobileNumber string) (models.OTPChallenge, error)

	// VerifyOTP exchanges the code for an identity, installs it in the
	// session store as one transition, and persists it. Rejected with
	// [ErrInvalidOTPLength] before any network call when the code length
	// is wrong, and with [session.ErrFlowOrder] when no challenge is
	// outstanding for the number.
	VerifyOTP(ctx context.Context, mobileNumber string, code string) (models.Identity, error)

	// Register creates a new account. On success the flow is primed so
	// the user can immediately request a code for the new number.
	Register(ctx context.Context, form models.RegistrationForm) (models.User, error)

	// UpdateProfile pushes changed profile fields to the backend, merges
	// the confirmed record into the session, and persists it. Requires an
	// authenticated session.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// Logout clears the session store, the persisted session slice, and
	// the adapter token. Safe to call when not logged in.
	Logout(ctx context.Context) error
}

// MarketplaceService defines the client-side contract for listings, trips,
// vehicles, and search. List methods always return an empty (never nil)
// slice with a nil error when the backend has nothing.
type MarketplaceService interface {
	Loads(ctx context.Context) ([]models.LoadPost, error)
	PostLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error)
	UpdateLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error)
	RemoveLoad(ctx context.Context, id int64) error

	Trucks(ctx context.Context) ([]models.TruckPost, error)
	PostTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error)
	UpdateTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error)
	RemoveTruck(ctx context.Context, id int64) error

	Trips(ctx context.Context) ([]models.Trip, error)
	RecordTrip(ctx context.Context, trip models.Trip) (models.Trip, error)

	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	AddVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error)
	RemoveVehicle(ctx context.Context, id int64) error

	// Search runs the backend keyword search. Returns
	// [ErrInvalidFilterType] before any network call when the filter type
	// is not one of the known listing kinds or empty.
	Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error)

	// FilterLoads and FilterTrucks narrow an already fetched list by a
	// case-insensitive keyword for the browse screen. No I/O.
	FilterLoads(posts []models.LoadPost, keyword string) []models.LoadPost
	FilterTrucks(posts []models.TruckPost, keyword string) []models.TruckPost
}

// ReferenceService serves the state and city reference lists. Lists come
// from the backend and are cached in memory; Refresh replaces the cache.
type ReferenceService interface {
	// States returns the cached state list, fetching it first when the
	// cache is empty.
	States(ctx context.Context) ([]models.State, error)

	// Cities returns the cached city list, fetching it first when the
	// cache is empty.
	Cities(ctx context.Context) ([]models.City, error)

	// CitiesOfState narrows the cached city list to one state.
	CitiesOfState(ctx context.Context, stateID int64) ([]models.City, error)

	// Refresh re-fetches both lists and replaces the cache. The cache is
	// left untouched when either fetch fails.
	Refresh(ctx context.Context) error
}

// ReferenceJob defines the contract for a background worker that
// periodically refreshes the reference-data cache.
type ReferenceJob interface {
	// Start launches the background goroutine. It refreshes every
	// interval, defaulting to 30 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// CalcService implements the toll and mileage calculators. Pure arithmetic
// over validated inputs, no I/O.
type CalcService interface {
	// Toll estimates the toll cost of a route: distance times the
	// per-kilometre rate of the vehicle class, plus a flat charge per
	// toll plaza crossed.
	Toll(req models.TollRequest) (models.TollEstimate, error)

	// Mileage computes fuel efficiency and trip fuel cost from distance
	// and fuel consumed.
	Mileage(req models.MileageRequest) (models.MileageEstimate, error)
}
