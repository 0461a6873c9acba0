package devserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/logilink/logilink-client/models"
)

// ── loads ───────────────────────────────────────────────────────────────────

func (s *Server) loadList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	posts := make([]models.LoadPost, 0, len(s.loads))
	for _, post := range s.loads {
		posts = append(posts, post)
	}
	s.mu.Unlock()

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	writeJSON(w, posts, http.StatusOK)
}

func (s *Server) loadCreate(w http.ResponseWriter, r *http.Request) {
	var post models.LoadPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	post.ID = s.allocID()
	post.UserID = authedUserID(r.Context())
	post.PostedAt = time.Now()
	s.loads[post.ID] = post
	s.mu.Unlock()

	writeJSON(w, post, http.StatusOK)
}

func (s *Server) loadUpdate(w http.ResponseWriter, r *http.Request) {
	var post models.LoadPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.loads[post.ID]
	if !ok {
		http.Error(w, "load not found", http.StatusNotFound)
		return
	}

	post.UserID = existing.UserID
	post.PostedAt = existing.PostedAt
	s.loads[post.ID] = post

	writeJSON(w, post, http.StatusOK)
}

func (s *Server) loadDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loads[id]; !ok {
		http.Error(w, "load not found", http.StatusNotFound)
		return
	}
	delete(s.loads, id)

	w.WriteHeader(http.StatusOK)
}

// ── trucks ──────────────────────────────────────────────────────────────────

func (s *Server) truckList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	posts := make([]models.TruckPost, 0, len(s.trucks))
	for _, post := range s.trucks {
		posts = append(posts, post)
	}
	s.mu.Unlock()

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	writeJSON(w, posts, http.StatusOK)
}

func (s *Server) truckCreate(w http.ResponseWriter, r *http.Request) {
	var post models.TruckPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	post.ID = s.allocID()
	post.UserID = authedUserID(r.Context())
	post.PostedAt = time.Now()
	s.trucks[post.ID] = post
	s.mu.Unlock()

	writeJSON(w, post, http.StatusOK)
}

func (s *Server) truckUpdate(w http.ResponseWriter, r *http.Request) {
	var post models.TruckPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.trucks[post.ID]
	if !ok {
		http.Error(w, "truck not found", http.StatusNotFound)
		return
	}

	post.UserID = existing.UserID
	post.PostedAt = existing.PostedAt
	s.trucks[post.ID] = post

	writeJSON(w, post, http.StatusOK)
}

func (s *Server) truckDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trucks[id]; !ok {
		http.Error(w, "truck not found", http.StatusNotFound)
		return
	}
	delete(s.trucks, id)

	w.WriteHeader(http.StatusOK)
}

// ── trips ───────────────────────────────────────────────────────────────────

func (s *Server) tripList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	trips := make([]models.Trip, 0, len(s.trips))
	for _, trip := range s.trips {
		trips = append(trips, trip)
	}
	s.mu.Unlock()

	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
	writeJSON(w, trips, http.StatusOK)
}

func (s *Server) tripCreate(w http.ResponseWriter, r *http.Request) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	trip.ID = s.allocID()
	trip.UserID = authedUserID(r.Context())
	trip.CreatedAt = time.Now()
	if trip.Status == "" {
		trip.Status = "scheduled"
	}
	s.trips[trip.ID] = trip
	s.mu.Unlock()

	writeJSON(w, trip, http.StatusOK)
}

// ── vehicles ────────────────────────────────────────────────────────────────

func (s *Server) vehicleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	vehicles := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		vehicles = append(vehicles, v)
	}
	s.mu.Unlock()

	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	writeJSON(w, vehicles, http.StatusOK)
}

func (s *Server) vehicleCreate(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	v.ID = s.allocID()
	v.UserID = authedUserID(r.Context())
	s.vehicles[v.ID] = v
	s.mu.Unlock()

	writeJSON(w, v, http.StatusOK)
}

func (s *Server) vehicleUpdate(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.vehicles[v.ID]
	if !ok {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}

	v.UserID = existing.UserID
	s.vehicles[v.ID] = v

	writeJSON(w, v, http.StatusOK)
}

func (s *Server) vehicleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[id]; !ok {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}
	delete(s.vehicles, id)

	w.WriteHeader(http.StatusOK)
}

// ── search ──────────────────────────────────────────────────────────────────

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	keyword := strings.ToLower(r.URL.Query().Get("keyword"))
	filterType := r.URL.Query().Get("filterType")

	switch filterType {
	case "", models.ListingKindLoad, models.ListingKindTruck, models.ListingKindTrip:
	default:
		http.Error(w, "invalid filterType", http.StatusBadRequest)
		return
	}

	result := models.SearchResult{
		Loads:  []models.LoadPost{},
		Trucks: []models.TruckPost{},
		Trips:  []models.Trip{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if filterType == "" || filterType == models.ListingKindLoad {
		for _, post := range s.loads {
			if containsAny(keyword, post.Origin, post.Destination, post.Material, post.TruckType) {
				result.Loads = append(result.Loads, post)
			}
		}
		sort.Slice(result.Loads, func(i, j int) bool { return result.Loads[i].ID < result.Loads[j].ID })
	}

	if filterType == "" || filterType == models.ListingKindTruck {
		for _, post := range s.trucks {
			if containsAny(keyword, post.CurrentCity, post.PreferredRoute, post.TruckType, post.VehicleNumber) {
				result.Trucks = append(result.Trucks, post)
			}
		}
		sort.Slice(result.Trucks, func(i, j int) bool { return result.Trucks[i].ID < result.Trucks[j].ID })
	}

	if filterType == "" || filterType == models.ListingKindTrip {
		for _, trip := range s.trips {
			if containsAny(keyword, trip.Origin, trip.Destination, trip.Status) {
				result.Trips = append(result.Trips, trip)
			}
		}
		sort.Slice(result.Trips, func(i, j int) bool { return result.Trips[i].ID < result.Trips[j].ID })
	}

	writeJSON(w, result, http.StatusOK)
}

func containsAny(keyword string, fields ...string) bool {
	if keyword == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}
