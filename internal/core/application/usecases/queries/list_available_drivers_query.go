package queries

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrListAvailableDriversQueryIsNotConstructed = errors.New(
	"ListAvailableDriversQuery must be created via NewListAvailableDriversQuery constructor",
)

// ListAvailableDriversQuery finds drivers who could take a job from the
// given pickup point, nearest first.
type ListAvailableDriversQuery struct {
	pickup kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewListAvailableDriversQuery creates a query anchored at the pickup point.
func NewListAvailableDriversQuery(pickup kernel.GeoPoint) (ListAvailableDriversQuery, error) {
	if err := pickup.Validate(); err != nil {
		return ListAvailableDriversQuery{}, errs.NewValueIsInvalidErrorWithCause("pickup", err)
	}
	return ListAvailableDriversQuery{
		pickup: pickup,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Pickup returns the point distances are measured from.
func (q ListAvailableDriversQuery) Pickup() kernel.GeoPoint {
	return q.pickup
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableDriversQueryIsNotConstructed)
}

// ListAvailableDriversQueryResponse is one candidate driver annotated with
// the road-free distance to the pickup point.
type ListAvailableDriversQueryResponse struct {
	ID            kernel.UUID
	FullName      string
	VehicleType   string
	VehicleNumber string
	Rating        float64
	RatingCount   int
	Location      kernel.GeoPoint
	DistanceKm    float64
}
