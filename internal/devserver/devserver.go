// Package devserver is an in-memory stand-in for the logilink marketplace
// backend. It implements the REST contract the client consumes — phone
// check, OTP login, registration, reference lists, marketplace CRUD and
// search — with no persistence, so it can back local development and the
// end-to-end tests.
//
// The OTP store is last-write-wins per phone number: requesting a second
// code invalidates the first, matching the production provider. Issued
// codes are echoed in the send-otp response body so tests can complete the
// login flow without a phone.
package devserver

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/logilink/logilink-client/internal/config"
	"github.com/logilink/logilink-client/internal/logger"
	"github.com/logilink/logilink-client/models"
)

type Server struct {
	cfg        *config.DevServerConfig
	logger     *logger.Logger
	httpServer *http.Server

	mu           sync.Mutex
	nextID       int64
	usersByPhone map[string]models.User
	otps         map[string]string
	otpSeq       int
	loads        map[int64]models.LoadPost
	trucks       map[int64]models.TruckPost
	trips        map[int64]models.Trip
	vehicles     map[int64]models.Vehicle
	states       []models.State
	cities       []models.City
}

func NewServer(cfg *config.DevServerConfig, logger *logger.Logger) *Server {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("dev server created")
	return &Server{
		cfg:          cfg,
		logger:       logger,
		nextID:       1,
		usersByPhone: make(map[string]models.User),
		otps:         make(map[string]string),
		loads:        make(map[int64]models.LoadPost),
		trucks:       make(map[int64]models.TruckPost),
		trips:        make(map[int64]models.Trip),
		vehicles:     make(map[int64]models.Vehicle),
		states:       seedStates(),
		cities:       seedCities(),
	}
}

func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/User/check-mobile", s.checkMobile)
		r.Post("/User/send-otp", s.sendOTP)
		r.Post("/User/login-otp", s.loginOTP)
		r.Post("/User/register", s.register)
		r.Get("/State/list", s.stateList)
		r.Get("/City/list", s.cityList)
	})

	// routes behind the bearer token
	router.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Put("/User/update", s.updateProfile)

		r.Get("/Load/list", s.loadList)
		r.Post("/Load/create", s.loadCreate)
		r.Put("/Load/update", s.loadUpdate)
		r.Delete("/Load/delete/{id}", s.loadDelete)

		r.Get("/Truck/list", s.truckList)
		r.Post("/Truck/create", s.truckCreate)
		r.Put("/Truck/update", s.truckUpdate)
		r.Delete("/Truck/delete/{id}", s.truckDelete)

		r.Get("/Trip/list", s.tripList)
		r.Post("/Trip/create", s.tripCreate)

		r.Get("/Vehicle/list", s.vehicleList)
		r.Post("/Vehicle/create", s.vehicleCreate)
		r.Put("/Vehicle/update", s.vehicleUpdate)
		r.Delete("/Vehicle/delete/{id}", s.vehicleDelete)

		r.Get("/Marketplace/search", s.search)
	})

	return router
}

// allocID hands out the next record identifier. Callers must hold s.mu.
func (s *Server) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}
