package devserver

import (
	"net/http"

	"github.com/logilink/logilink-client/models"
)

// Reference data the stub ships with. A slice of the real lists, enough
// for forms and filters to behave realistically.
func seedStates() []models.State {
	return []models.State{
		{ID: 1, Name: "Maharashtra", Code: "MH"},
		{ID: 2, Name: "Madhya Pradesh", Code: "MP"},
		{ID: 3, Name: "Gujarat", Code: "GJ"},
		{ID: 4, Name: "Rajasthan", Code: "RJ"},
		{ID: 5, Name: "Karnataka", Code: "KA"},
	}
}

func seedCities() []models.City {
	return []models.City{
		{ID: 1, Name: "Mumbai", StateID: 1},
		{ID: 2, Name: "Pune", StateID: 1},
		{ID: 3, Name: "Nagpur", StateID: 1},
		{ID: 4, Name: "Indore", StateID: 2},
		{ID: 5, Name: "Bhopal", StateID: 2},
		{ID: 6, Name: "Ahmedabad", StateID: 3},
		{ID: 7, Name: "Surat", StateID: 3},
		{ID: 8, Name: "Jaipur", StateID: 4},
		{ID: 9, Name: "Bengaluru", StateID: 5},
	}
}

func (s *Server) stateList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	states := s.states
	s.mu.Unlock()

	writeJSON(w, states, http.StatusOK)
}

func (s *Server) cityList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cities := s.cities
	s.mu.Unlock()

	writeJSON(w, cities, http.StatusOK)
}
