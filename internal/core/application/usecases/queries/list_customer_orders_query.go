package queries

import (
	"errors"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery retrieves a customer's order history.
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates a history query for the given customer.
func NewListCustomerOrdersQuery(customerID kernel.UUID) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customerID")
	}
	return ListCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the customer whose orders are listed.
func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// ListCustomerOrdersQueryResponse is one order in a customer's history.
// FareTotal is nil for open orders that have not been priced yet.
type ListCustomerOrdersQueryResponse struct {
	ID            kernel.UUID
	Status        string
	PickupAddress string
	DropAddress   string
	MaterialType  string
	WeightKg      float64
	DistanceKm    float64
	FareTotal     *float64
	CreatedAt     time.Time
}
