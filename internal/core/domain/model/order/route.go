package order

import (
	"fmt"
	"strings"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrRouteIsNotConstructed = fmt.Errorf("route is not constructed")

// Route describes where an order travels: the pickup and drop coordinates
// together with their human-readable addresses.
type Route struct {
	pickup        kernel.GeoPoint
	drop          kernel.GeoPoint
	pickupAddress string
	dropAddress   string
	distanceKm    float64

	guard guard.ConstructorGuard
}

// NewRoute creates a Route. Both points must be constructed geo points and
// both addresses are required.
func NewRoute(pickup kernel.GeoPoint, drop kernel.GeoPoint, pickupAddress string, dropAddress string) (Route, error) {
	if err := pickup.Validate(); err != nil {
		return Route{}, errs.NewValueIsInvalidErrorWithCause("pickup", err)
	}
	if err := drop.Validate(); err != nil {
		return Route{}, errs.NewValueIsInvalidErrorWithCause("drop", err)
	}
	if strings.TrimSpace(pickupAddress) == "" {
		return Route{}, errs.NewValueIsRequiredError("pickupAddress")
	}
	if strings.TrimSpace(dropAddress) == "" {
		return Route{}, errs.NewValueIsRequiredError("dropAddress")
	}

	distanceKm, err := pickup.DistanceKmTo(drop)
	if err != nil {
		return Route{}, err
	}

	return Route{
		pickup:        pickup,
		drop:          drop,
		pickupAddress: pickupAddress,
		dropAddress:   dropAddress,
		distanceKm:    distanceKm,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Route was created through NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Pickup returns the pickup coordinates.
func (r Route) Pickup() kernel.GeoPoint {
	return r.pickup
}

// Drop returns the drop coordinates.
func (r Route) Drop() kernel.GeoPoint {
	return r.drop
}

// PickupAddress returns the human-readable pickup address.
func (r Route) PickupAddress() string {
	return r.pickupAddress
}

// DropAddress returns the human-readable drop address.
func (r Route) DropAddress() string {
	return r.dropAddress
}

// DistanceKm returns the great-circle distance between pickup and drop,
// computed once at construction.
func (r Route) DistanceKm() float64 {
	return r.distanceKm
}
