package queries

import (
	"errors"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrListDriverRequestsQueryIsNotConstructed = errors.New(
	"ListDriverRequestsQuery must be created via NewListDriverRequestsQuery constructor",
)

// ListDriverRequestsQuery retrieves the orders currently offered to a driver
// and awaiting their accept or reject.
type ListDriverRequestsQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDriverRequestsQuery creates a query for the given driver's pending requests.
func NewListDriverRequestsQuery(driverID kernel.UUID) (ListDriverRequestsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return ListDriverRequestsQuery{}, errs.NewValueIsRequiredError("driverID")
	}
	return ListDriverRequestsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the driver whose requests are listed.
func (q ListDriverRequestsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
func (q ListDriverRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListDriverRequestsQueryIsNotConstructed)
}

// ListDriverRequestsQueryResponse is one order awaiting the driver's answer.
type ListDriverRequestsQueryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	PickupAddress string
	DropAddress   string
	DistanceKm    float64
	FareTotal     *float64
	CreatedAt     time.Time
}
