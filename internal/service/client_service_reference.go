package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/logilink/logilink-client/internal/adapter"
	"github.com/logilink/logilink-client/models"
)

type clientReferenceService struct {
	adapter adapter.BackendAdapter

	mu     sync.RWMutex
	states []models.State
	cities []models.City
}

func NewClientReferenceService(backendAdapter adapter.BackendAdapter) ReferenceService {
	return &clientReferenceService{adapter: backendAdapter}
}

func (r *clientReferenceService) States(ctx context.Context) ([]models.State, error) {
	r.mu.RLock()
	cached := r.states
	r.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	states, err := r.adapter.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch states: %w", err)
	}
	if states == nil {
		states = []models.State{}
	}

	r.mu.Lock()
	r.states = states
	r.mu.Unlock()

	return states, nil
}

func (r *clientReferenceService) Cities(ctx context.Context) ([]models.City, error) {
	r.mu.RLock()
	cached := r.cities
	r.mu.RUnlock()

	if cached != nil {
		return cached, nil
	}

	cities, err := r.adapter.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch cities: %w", err)
	}
	if cities == nil {
		cities = []models.City{}
	}

	r.mu.Lock()
	r.cities = cities
	r.mu.Unlock()

	return cities, nil
}

func (r *clientReferenceService) CitiesOfState(ctx context.Context, stateID int64) ([]models.City, error) {
	cities, err := r.Cities(ctx)
	if err != nil {
		return nil, err
	}

	narrowed := []models.City{}
	for _, city := range cities {
		if city.StateID == stateID {
			narrowed = append(narrowed, city)
		}
	}
	return narrowed, nil
}

// Refresh re-fetches both lists and swaps the cache in one step. On any
// fetch error the previous cache stays in place.
func (r *clientReferenceService) Refresh(ctx context.Context) error {
	states, err := r.adapter.States(ctx)
	if err != nil {
		return fmt.Errorf("refresh states: %w", err)
	}
	cities, err := r.adapter.Cities(ctx)
	if err != nil {
		return fmt.Errorf("refresh cities: %w", err)
	}

	if states == nil {
		states = []models.State{}
	}
	if cities == nil {
		cities = []models.City{}
	}

	r.mu.Lock()
	r.states = states
	r.cities = cities
	r.mu.Unlock()

	return nil
}
