// Package queries contains read operations for retrieving system state.
// Query handlers bypass the domain repositories and read from the database
// directly, returning read models shaped for their specific consumer.
package queries

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrGetFareQuoteQueryIsNotConstructed = errors.New(
	"GetFareQuoteQuery must be created via NewGetFareQuoteQuery constructor",
)

// GetFareQuoteQuery prices a prospective shipment before an order exists.
// The quote is computed from the route and cargo weight alone and involves
// no persistence.
type GetFareQuoteQuery struct {
	pickup   kernel.GeoPoint
	drop     kernel.GeoPoint
	weightKg float64

	guard guard.ConstructorGuard
}

// NewGetFareQuoteQuery creates a quote query for the given route and weight.
func NewGetFareQuoteQuery(pickup kernel.GeoPoint, drop kernel.GeoPoint, weightKg float64) (GetFareQuoteQuery, error) {
	var err error
	q := GetFareQuoteQuery{guard: guard.NewConstructorGuard()}

	err = errors.Join(err, q.setPickup(pickup))
	err = errors.Join(err, q.setDrop(drop))
	err = errors.Join(err, q.setWeightKg(weightKg))

	if err != nil {
		return GetFareQuoteQuery{}, err
	}
	return q, nil
}

// Pickup returns the pickup point of the quoted route.
func (q GetFareQuoteQuery) Pickup() kernel.GeoPoint {
	return q.pickup
}

// Drop returns the drop point of the quoted route.
func (q GetFareQuoteQuery) Drop() kernel.GeoPoint {
	return q.drop
}

// WeightKg returns the cargo weight of the quoted shipment.
func (q GetFareQuoteQuery) WeightKg() float64 {
	return q.weightKg
}

// Validate ensures the query was created through the constructor.
func (q GetFareQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetFareQuoteQueryIsNotConstructed)
}

func (q *GetFareQuoteQuery) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup", err)
	}
	q.pickup = pickup
	return nil
}

func (q *GetFareQuoteQuery) setDrop(drop kernel.GeoPoint) error {
	if err := drop.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("drop", err)
	}
	q.drop = drop
	return nil
}

func (q *GetFareQuoteQuery) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}
	q.weightKg = weightKg
	return nil
}

// GetFareQuoteQueryResponse is the priced quote: the route distance and the
// full fare breakdown a customer would be charged.
type GetFareQuoteQueryResponse struct {
	DistanceKm  float64
	Total       float64
	DriverShare float64
	Commission  float64
}
