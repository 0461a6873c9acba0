package service

import (
	"fmt"

	"github.com/logilink/logilink-client/models"
)

// Per-kilometre toll rates by vehicle class and the flat charge collected
// at each toll plaza, in rupees. Values follow the national highway fee
// schedule the original app shipped with.
var tollRatePerKm = map[string]float64{
	models.VehicleClassLCV:       1.05,
	models.VehicleClassTwoAxle:   2.20,
	models.VehicleClassThreeAxle: 2.40,
	models.VehicleClassHeavy:     3.75,
}

const tollPlazaCharge = 45.0

type clientCalcService struct{}

func NewClientCalcService() CalcService {
	return &clientCalcService{}
}

func (c *clientCalcService) Toll(req models.TollRequest) (models.TollEstimate, error) {
	if req.DistanceKm <= 0 {
		return models.TollEstimate{}, fmt.Errorf("%w: %v km", ErrInvalidDistance, req.DistanceKm)
	}
	if req.PlazaCount < 0 {
		return models.TollEstimate{}, fmt.Errorf("%w: %d", ErrInvalidPlazaCount, req.PlazaCount)
	}

	rate, ok := tollRatePerKm[req.VehicleClass]
	if !ok {
		return models.TollEstimate{}, fmt.Errorf("%w: %q", ErrUnknownVehicleClass, req.VehicleClass)
	}

	distanceCharge := req.DistanceKm * rate
	plazaCharge := float64(req.PlazaCount) * tollPlazaCharge

	return models.TollEstimate{
		DistanceCharge: distanceCharge,
		PlazaCharge:    plazaCharge,
		Total:          distanceCharge + plazaCharge,
	}, nil
}

func (c *clientCalcService) Mileage(req models.MileageRequest) (models.MileageEstimate, error) {
	if req.DistanceKm <= 0 {
		return models.MileageEstimate{}, fmt.Errorf("%w: %v km", ErrInvalidDistance, req.DistanceKm)
	}
	if req.FuelLitres <= 0 {
		return models.MileageEstimate{}, fmt.Errorf("%w: %v l", ErrInvalidFuelVolume, req.FuelLitres)
	}
	if req.FuelPricePerLitre < 0 {
		return models.MileageEstimate{}, fmt.Errorf("%w: %v", ErrInvalidFuelPrice, req.FuelPricePerLitre)
	}

	fuelCost := req.FuelLitres * req.FuelPricePerLitre

	return models.MileageEstimate{
		KmPerLitre: req.DistanceKm / req.FuelLitres,
		FuelCost:   fuelCost,
		CostPerKm:  fuelCost / req.DistanceKm,
	}, nil
}
