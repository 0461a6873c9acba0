package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/models"
)

type clientMarketplaceService struct {
	adapter adapter.BackendAdapter
}

func NewClientMarketplaceService(backendAdapter adapter.BackendAdapter) MarketplaceService {
	return &clientMarketplaceService{adapter: backendAdapter}
}

// ── load availability ───────────────────────────────────────────────────────

func (m *clientMarketplaceService) Loads(ctx context.Context) ([]models.LoadPost, error) {
	posts, err := m.adapter.ListLoads(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loads: %w", err)
	}
	if posts == nil {
		posts = []models.LoadPost{}
	}
	return posts, nil
}

func (m *clientMarketplaceService) PostLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error) {
	created, err := m.adapter.CreateLoad(ctx, post)
	if err != nil {
		return models.LoadPost{}, fmt.Errorf("post load: %w", err)
	}
	return created, nil
}

func (m *clientMarketplaceService) UpdateLoad(ctx context.Context, post models.LoadPost) (models.LoadPost, error) {
	updated, err := m.adapter.UpdateLoad(ctx, post)
	if err != nil {
		return models.LoadPost{}, fmt.Errorf("update load: %w", err)
	}
	return updated, nil
}

func (m *clientMarketplaceService) RemoveLoad(ctx context.Context, id int64) error {
	if err := m.adapter.DeleteLoad(ctx, id); err != nil {
		return fmt.Errorf("remove load: %w", err)
	}
	return nil
}

// ── truck availability ──────────────────────────────────────────────────────

func (m *clientMarketplaceService) Trucks(ctx context.Context) ([]models.TruckPost, error) {
	posts, err := m.adapter.ListTrucks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	if posts == nil {
		posts = []models.TruckPost{}
	}
	return posts, nil
}

func (m *clientMarketplaceService) PostTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error) {
	created, err := m.adapter.CreateTruck(ctx, post)
	if err != nil {
		return models.TruckPost{}, fmt.Errorf("post truck: %w", err)
	}
	return created, nil
}

func (m *clientMarketplaceService) UpdateTruck(ctx context.Context, post models.TruckPost) (models.TruckPost, error) {
	updated, err := m.adapter.UpdateTruck(ctx, post)
	if err != nil {
		return models.TruckPost{}, fmt.Errorf("update truck: %w", err)
	}
	return updated, nil
}

func (m *clientMarketplaceService) RemoveTruck(ctx context.Context, id int64) error {
	if err := m.adapter.DeleteTruck(ctx, id); err != nil {
		return fmt.Errorf("remove truck: %w", err)
	}
	return nil
}

// ── trips ───────────────────────────────────────────────────────────────────

func (m *clientMarketplaceService) Trips(ctx context.Context) ([]models.Trip, error) {
	trips, err := m.adapter.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

func (m *clientMarketplaceService) RecordTrip(ctx context.Context, trip models.Trip) (models.Trip, error) {
	created, err := m.adapter.CreateTrip(ctx, trip)
	if err != nil {
		return models.Trip{}, fmt.Errorf("record trip: %w", err)
	}
	return created, nil
}

// ── vehicles ────────────────────────────────────────────────────────────────

func (m *clientMarketplaceService) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := m.adapter.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return vehicles, nil
}

func (m *clientMarketplaceService) AddVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	created, err := m.adapter.CreateVehicle(ctx, v)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("add vehicle: %w", err)
	}
	return created, nil
}

func (m *clientMarketplaceService) UpdateVehicle(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	updated, err := m.adapter.UpdateVehicle(ctx, v)
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("update vehicle: %w", err)
	}
	return updated, nil
}

func (m *clientMarketplaceService) RemoveVehicle(ctx context.Context, id int64) error {
	if err := m.adapter.DeleteVehicle(ctx, id); err != nil {
		return fmt.Errorf("remove vehicle: %w", err)
	}
	return nil
}

// ── search & filtering ──────────────────────────────────────────────────────

func (m *clientMarketplaceService) Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error) {
	switch q.FilterType {
	case "", models.ListingKindLoad, models.ListingKindTruck, models.ListingKindTrip:
	default:
		return models.SearchResult{}, fmt.Errorf("%w: %q", ErrInvalidFilterType, q.FilterType)
	}

	result, err := m.adapter.Search(ctx, q)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search: %w", err)
	}

	if result.Loads == nil {
		result.Loads = []models.LoadPost{}
	}
	if result.Trucks == nil {
		result.Trucks = []models.TruckPost{}
	}
	if result.Trips == nil {
		result.Trips = []models.Trip{}
	}

	return result, nil
}

func (m *clientMarketplaceService) FilterLoads(posts []models.LoadPost, keyword string) []models.LoadPost {
	filtered := []models.LoadPost{}
	for _, post := range posts {
		if keywordMatches(keyword, post.Origin, post.Destination, post.Material, post.TruckType) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func (m *clientMarketplaceService) FilterTrucks(posts []models.TruckPost, keyword string) []models.TruckPost {
	filtered := []models.TruckPost{}
	for _, post := range posts {
		if keywordMatches(keyword, post.CurrentCity, post.PreferredRoute, post.TruckType, post.VehicleNumber) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

// keywordMatches reports whether any field contains keyword,
// case-insensitively. An empty keyword matches everything.
func keywordMatches(keyword string, fields ...string) bool {
	if keyword == "" {
		return true
	}
	keyword = strings.ToLower(keyword)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}
