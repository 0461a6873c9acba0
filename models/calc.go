package models

// TollRequest is the input of the toll calculator.
type TollRequest struct {
	// DistanceKm is the tolled route length in kilometres.
	DistanceKm float64 `json:"distanceKm"`
	// VehicleClass selects the per-kilometre toll rate. One of the
	// VehicleClass* constants.
	VehicleClass string `json:"vehicleClass"`
	// PlazaCount is the number of toll plazas crossed on the route.
	PlazaCount int `json:"plazaCount"`
}

// TollEstimate is the output of the toll calculator.
type TollEstimate struct {
	DistanceCharge float64 `json:"distanceCharge"`
	PlazaCharge    float64 `json:"plazaCharge"`
	Total          float64 `json:"total"`
}

// MileageRequest is the input of the mileage calculator.
type MileageRequest struct {
	// DistanceKm is the distance covered in kilometres.
	DistanceKm float64 `json:"distanceKm"`
	// FuelLitres is the fuel consumed over that distance.
	FuelLitres float64 `json:"fuelLitres"`
	// FuelPricePerLitre prices the consumed fuel. Zero is allowed; cost
	// fields are then zero.
	FuelPricePerLitre float64 `json:"fuelPricePerLitre"`
}

// MileageEstimate is the output of the mileage calculator.
type MileageEstimate struct {
	KmPerLitre float64 `json:"kmPerLitre"`
	FuelCost   float64 `json:"fuelCost"`
	CostPerKm  float64 `json:"costPerKm"`
}

// Vehicle classes recognised by the toll calculator.
const (
	VehicleClassLCV       = "lcv"
	VehicleClassTwoAxle   = "two-axle"
	VehicleClassThreeAxle = "three-axle"
	VehicleClassHeavy     = "heavy"
)
