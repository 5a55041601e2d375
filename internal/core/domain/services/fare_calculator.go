package services

import (
	"math"

	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/pkg/errs"
)

// Fare formula constants. The fare is a flat base plus linear distance and
// weight components.
const (
	BaseFare  = 30.0
	PerKmRate = 10.0
	PerKgRate = 5.0

	// DefaultCommissionRate is the platform's cut of the fare total when the
	// deployment does not configure its own rate.
	DefaultCommissionRate = 0.20
)

// FareCalculator is a domain service that prices an order from its trip
// distance and cargo weight and splits the total between the driver and the
// platform.
//
// Pricing rules:
//   - fare total = base fare + distance and weight components, rounded to the cent
//   - commission = commission rate times the total, rounded to the cent
//   - driver share = total minus commission
//
// The rounding order guarantees that driver share plus commission equals the
// total exactly, so the resulting breakdown always satisfies the Fare
// invariant.
type FareCalculator struct {
	commissionRate float64
}

// NewFareCalculator creates a FareCalculator with the given commission rate.
// The rate is a fraction of the fare total and must lie in [0, 1).
func NewFareCalculator(commissionRate float64) (FareCalculator, error) {
	if math.IsNaN(commissionRate) || commissionRate < 0 || commissionRate >= 1 {
		return FareCalculator{}, errs.NewValueIsOutOfRangeError("commissionRate", commissionRate, 0, 1)
	}
	return FareCalculator{commissionRate: commissionRate}, nil
}

// CommissionRate returns the configured platform cut.
func (f FareCalculator) CommissionRate() float64 {
	return f.commissionRate
}

// Calculate prices a trip. Distance must be non-negative and weight strictly
// positive; a zero-distance trip still costs the base fare plus the weight
// component.
func (f FareCalculator) Calculate(distanceKm float64, weightKg float64) (order.Fare, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return order.Fare{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return order.Fare{}, errs.NewValueIsInvalidError("weightKg")
	}

	total := roundToCent(BaseFare + PerKmRate*distanceKm + PerKgRate*weightKg)
	commission := roundToCent(total * f.commissionRate)
	driverShare := roundToCent(total - commission)

	return order.NewFare(total, driverShare, commission)
}

func roundToCent(v float64) float64 {
	return math.Round(v*100) / 100
}
