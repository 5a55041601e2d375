package queries

import (
	"errors"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the live view of a single order: where it
// stands in the lifecycle and, once a driver is attached, where that driver
// last reported from.
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a tracking query for the given order.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, errs.NewValueIsRequiredError("orderID")
	}
	return GetOrderTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the tracked order's identifier.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// GetOrderTrackingQueryResponse is the live tracking view. The driver
// fields are nil until a driver is attached, and DriverLocation stays nil
// for a driver who has not reported a position yet.
type GetOrderTrackingQueryResponse struct {
	ID               kernel.UUID
	Status           string
	Pickup           kernel.GeoPoint
	PickupAddress    string
	Drop             kernel.GeoPoint
	DropAddress      string
	DriverID         *kernel.UUID
	DriverName       *string
	DriverLocation   *kernel.GeoPoint
	DriverLastSeenAt *time.Time
}
