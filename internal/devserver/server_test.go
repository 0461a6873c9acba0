package devserver

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/internal/service"
	"github.com/logilink/logilink-client/internal/session"
	"github.com/logilink/logilink-client/internal/store"
	"github.com/logilink/logilink-client/models"
)

// memStateRepository keeps the persisted slices in memory so the end-to-end
// tests run without a database file.
type memStateRepository struct {
	mu      sync.Mutex
	session *store.PersistedSession
	theme   *store.PersistedTheme
}

func (r *memStateRepository) SaveSession(_ context.Context, s store.PersistedSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = &s
	return nil
}

func (r *memStateRepository) LoadSession(context.Context) (store.PersistedSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return store.PersistedSession{}, store.ErrNothingPersisted
	}
	return *r.session, nil
}

func (r *memStateRepository) ClearSession(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}

func (r *memStateRepository) SaveTheme(_ context.Context, t store.PersistedTheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = &t
	return nil
}

func (r *memStateRepository) LoadTheme(context.Context) (store.PersistedTheme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.theme == nil {
		return store.PersistedTheme{}, store.ErrNothingPersisted
	}
	return *r.theme, nil
}

type e2eEnv struct {
	services *service.ClientServices
	adapter  adapter.BackendAdapter
	sessions *session.Store
	repo     *memStateRepository
}

// newE2EEnv runs the full client stack against an in-process stub server.
func newE2EEnv(t *testing.T) *e2eEnv {
	t.Helper()

	log := logger.Nop()
	srv := NewServer(&config.DevServerConfig{
		HTTPAddress:   "localhost:0",
		TokenSignKey:  "e2e-sign-key",
		TokenIssuer:   "logilink-devserver",
		TokenDuration: time.Hour,
	}, log)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	backendAdapter, err := adapter.NewHTTPBackendAdapter(config.ClientAdapter{
		HTTPAddress:    ts.URL,
		RequestTimeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	repo := &memStateRepository{}
	sessions := session.NewStore()
	storages := &store.ClientStorages{StateRepository: repo}

	return &e2eEnv{
		services: service.NewClientServices(storages, backendAdapter, sessions, "terminal"),
		adapter:  backendAdapter,
		sessions: sessions,
		repo:     repo,
	}
}

func registerAndLogin(t *testing.T, env *e2eEnv, phone string) models.Identity {
	t.Helper()
	ctx := context.Background()
	auth := env.services.AuthService

	_, err := auth.Register(ctx, models.RegistrationForm{
		FirstName:    "Asha",
		LastName:     "Kulkarni",
		MobileNumber: phone,
		City:         "Pune",
	})
	require.NoError(t, err)

	challenge, err := auth.RequestOTP(ctx, phone)
	require.NoError(t, err)
	require.Len(t, challenge.EchoCode, models.OTPLength)

	identity, err := auth.VerifyOTP(ctx, phone, challenge.EchoCode)
	require.NoError(t, err)
	return identity
}

func TestE2E_RegisterThenLogin(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	// an unknown number is not registered
	exists, err := env.services.AuthService.CheckPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.False(t, exists)

	identity := registerAndLogin(t, env, "9876543210")
	assert.Equal(t, "Asha", identity.User.FirstName)
	assert.NotEmpty(t, identity.AccessToken)
	assert.NotEmpty(t, identity.RefreshToken)

	// the session store committed user and tokens together
	st := env.sessions.Get()
	assert.True(t, st.Authenticated())
	assert.Equal(t, identity.AccessToken, st.AccessToken)

	// the identity slice reached durable storage
	persisted, err := env.repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", persisted.User.MobileNumber)

	// a second check now reports the number as registered
	exists, err = env.services.AuthService.CheckPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestE2E_StaleChallengeRejected(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()
	auth := env.services.AuthService

	_, err := auth.Register(ctx, models.RegistrationForm{MobileNumber: "9000000001"})
	require.NoError(t, err)

	first, err := auth.RequestOTP(ctx, "9000000001")
	require.NoError(t, err)
	second, err := auth.RequestOTP(ctx, "9000000001")
	require.NoError(t, err)
	require.NotEqual(t, first.EchoCode, second.EchoCode)

	// the first code was superseded by the second request
	_, err = auth.VerifyOTP(ctx, "9000000001", first.EchoCode)
	require.ErrorIs(t, err, service.ErrLoginOnServer)

	// a code is single-use per challenge: request a fresh one and finish
	third, err := auth.RequestOTP(ctx, "9000000001")
	require.NoError(t, err)
	_, err = auth.VerifyOTP(ctx, "9000000001", third.EchoCode)
	require.NoError(t, err)
}

func TestE2E_SendOTPToUnknownPhoneFails(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()
	auth := env.services.AuthService

	// the client-side gate: an unchecked number cannot request a code
	_, err := auth.RequestOTP(ctx, "9111111111")
	assert.ErrorIs(t, err, session.ErrFlowOrder)

	// the server-side refusal: a 2xx response without a delivery
	// confirmation surfaces as a failed send at the adapter
	_, err = env.adapter.SendOTP(ctx, "9111111111")
	assert.ErrorIs(t, err, adapter.ErrOTPNotDelivered)
}

func TestE2E_MarketplaceCRUDAndSearch(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "9222222222")

	market := env.services.MarketplaceService

	// empty to start
	loads, err := market.Loads(ctx)
	require.NoError(t, err)
	assert.Empty(t, loads)

	created, err := market.PostLoad(ctx, models.LoadPost{
		Origin:       "Nagpur",
		Destination:  "Pune",
		Material:     "Steel",
		WeightTonnes: 18,
		TruckType:    "Open",
		OfferedPrice: 42000,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.UserID)
	assert.False(t, created.PostedAt.IsZero())

	truck, err := market.PostTruck(ctx, models.TruckPost{
		CurrentCity: "Indore",
		TruckType:   "Container",
	})
	require.NoError(t, err)

	// update round-trips
	created.OfferedPrice = 45000
	updated, err := market.UpdateLoad(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, float64(45000), updated.OfferedPrice)

	// search narrows by keyword and kind
	result, err := market.Search(ctx, models.SearchQuery{Keyword: "nagpur", FilterType: models.ListingKindLoad})
	require.NoError(t, err)
	require.Len(t, result.Loads, 1)
	assert.Empty(t, result.Trucks)

	result, err = market.Search(ctx, models.SearchQuery{Keyword: ""})
	require.NoError(t, err)
	assert.Len(t, result.Loads, 1)
	assert.Len(t, result.Trucks, 1)

	// delete removes the listing
	require.NoError(t, market.RemoveLoad(ctx, created.ID))
	loads, err = market.Loads(ctx)
	require.NoError(t, err)
	assert.Empty(t, loads)

	require.NoError(t, market.RemoveTruck(ctx, truck.ID))
}

func TestE2E_ListingsRequireToken(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	_, err := env.services.MarketplaceService.Loads(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestE2E_VehiclesAndTrips(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "9333333333")

	market := env.services.MarketplaceService

	vehicle, err := market.AddVehicle(ctx, models.Vehicle{
		VehicleNumber:  "MH12AB1234",
		TruckType:      "Open",
		CapacityTonnes: 20,
	})
	require.NoError(t, err)
	assert.NotZero(t, vehicle.ID)

	trip, err := market.RecordTrip(ctx, models.Trip{
		VehicleID:   vehicle.ID,
		Origin:      "Pune",
		Destination: "Surat",
		StartDate:   "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", trip.Status)

	trips, err := market.Trips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)

	require.NoError(t, market.RemoveVehicle(ctx, vehicle.ID))
}

func TestE2E_ReferenceLists(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	states, err := env.services.ReferenceService.States(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, states)

	cities, err := env.services.ReferenceService.CitiesOfState(ctx, states[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, cities)
}

func TestE2E_ProfileUpdateAndLogout(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()
	registerAndLogin(t, env, "9444444444")

	auth := env.services.AuthService

	updated, err := auth.UpdateProfile(ctx, models.User{Email: "asha@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", updated.Email)
	assert.Equal(t, "Asha", updated.FirstName, "server keeps fields the update left blank")

	require.NoError(t, auth.Logout(ctx))
	assert.False(t, env.sessions.Get().Authenticated())

	_, err = env.repo.LoadSession(ctx)
	assert.ErrorIs(t, err, store.ErrNothingPersisted)

	// the cleared token no longer reaches the backend
	_, err = env.services.MarketplaceService.Loads(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
