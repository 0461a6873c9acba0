package models

import "time"

// Listing kinds used by the marketplace search endpoint's filterType
// parameter and by the client-side filter on the browse screen.
const (
	ListingKindLoad  = "load"
	ListingKindTruck = "truck"
	ListingKindTrip  = "trip"
)

// LoadPost is a load-availability listing: cargo waiting for a truck.
type LoadPost struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Material     string    `json:"material"`
	WeightTonnes float64   `json:"weightTonnes"`
	TruckType    string    `json:"truckType"`
	OfferedPrice float64   `json:"offeredPrice"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	PostedAt     time.Time `json:"postedAt"`
}

// TruckPost is a driver/truck-availability listing: an empty truck
// looking for a load.
type TruckPost struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	CurrentCity    string    `json:"currentCity"`
	PreferredRoute string    `json:"preferredRoute"`
	TruckType      string    `json:"truckType"`
	CapacityTonnes float64   `json:"capacityTonnes"`
	VehicleNumber  string    `json:"vehicleNumber"`
	AvailableFrom  string    `json:"availableFrom"`
	ContactPhone   string    `json:"contactPhone"`
	PostedAt       time.Time `json:"postedAt"`
}

// Trip is a scheduled or completed truck trip record.
type Trip struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	VehicleID   int64     `json:"vehicleId"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Vehicle is a truck registered under the user's account.
type Vehicle struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	VehicleNumber  string `json:"vehicleNumber"`
	TruckType      string `json:"truckType"`
	CapacityTonnes float64 `json:"capacityTonnes"`
	Model          string `json:"model"`
	ManufactureYear int   `json:"manufactureYear"`
}

// SearchResult is the mixed result set returned by the marketplace search
// endpoint; slices are empty (never nil after decoding) for kinds the
// filter excluded.
type SearchResult struct {
	Loads  []LoadPost  `json:"loads"`
	Trucks []TruckPost `json:"trucks"`
	Trips  []Trip      `json:"trips"`
}
