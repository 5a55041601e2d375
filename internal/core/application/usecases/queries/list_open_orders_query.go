package queries

import (
	"errors"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrListOpenOrdersQueryIsNotConstructed = errors.New(
	"ListOpenOrdersQuery must be created via NewListOpenOrdersQuery constructor",
)

// ListOpenOrdersQuery retrieves the pool of unassigned orders drivers can
// claim.
type ListOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOpenOrdersQuery creates a query for the open order pool.
func NewListOpenOrdersQuery() ListOpenOrdersQuery {
	return ListOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOpenOrdersQueryIsNotConstructed)
}

// ListOpenOrdersQueryResponse is one claimable order as shown to browsing
// drivers. Open orders carry no fare yet, so the listing shows route and
// cargo facts a driver decides on.
type ListOpenOrdersQueryResponse struct {
	ID            kernel.UUID
	Pickup        kernel.GeoPoint
	PickupAddress string
	Drop          kernel.GeoPoint
	DropAddress   string
	MaterialType  string
	WeightKg      float64
	DistanceKm    float64
	CreatedAt     time.Time
}
