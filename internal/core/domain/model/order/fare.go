package order

import (
	"fmt"
	"math"

	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrFareIsNotConstructed = fmt.Errorf("fare is not constructed")

// Fare is the monetary breakdown of an order: the total charged to the
// customer, the driver's share and the company commission. The two parts
// always sum to the total, to the cent.
type Fare struct {
	total       float64
	driverShare float64
	commission  float64

	guard guard.ConstructorGuard
}

// NewFare creates a Fare from its three components.
//
// All components must be finite and non-negative, and driverShare plus
// commission must equal total to within half a cent. Calculations that
// produce the components are expected to round them before constructing.
func NewFare(total float64, driverShare float64, commission float64) (Fare, error) {
	for name, v := range map[string]float64{
		"total":        total,
		"driver share": driverShare,
		"commission":   commission,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Fare{}, errs.NewValueIsInvalidError(fmt.Sprintf("fare %s", name))
		}
	}

	if math.Abs(total-(driverShare+commission)) > 0.005 {
		return Fare{}, errs.NewValueIsInvalidError(
			fmt.Sprintf("fare breakdown: %.2f + %.2f does not sum to %.2f", driverShare, commission, total))
	}

	return Fare{
		total:       total,
		driverShare: driverShare,
		commission:  commission,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Fare was created through NewFare.
func (f Fare) Validate() error {
	return f.guard.Validate(ErrFareIsNotConstructed)
}

// Total returns the amount charged to the customer.
func (f Fare) Total() float64 {
	return f.total
}

// DriverShare returns the driver's part of the total.
func (f Fare) DriverShare() float64 {
	return f.driverShare
}

// Commission returns the company's part of the total.
func (f Fare) Commission() float64 {
	return f.commission
}

// IsEqual compares two fares component by component.
func (f Fare) IsEqual(other Fare) bool {
	return f.total == other.total &&
		f.driverShare == other.driverShare &&
		f.commission == other.commission
}
