// Package customer contains the Customer aggregate. Besides the profile link
// to its account, the aggregate carries the running counters the ledger
// updater maintains: order totals, spend and loyalty points.
package customer

import (
	"fmt"
	"math"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = fmt.Errorf("customer is not constructed")

// loyaltyDivisor converts completed-order spend into loyalty points: one
// point per full hundred currency units of fare.
const loyaltyDivisor = 100.0

// Customer is the profile and ledger of a customer account.
type Customer struct {
	id        kernel.UUID
	accountID kernel.UUID
	address   string

	totalOrders   int
	totalSpent    float64
	loyaltyPoints int
	lastOrderDate *time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer profile linked to an identity account.
func NewCustomer(id kernel.UUID, accountID kernel.UUID, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := accountID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("accountID", err)
	}

	return &Customer{
		id:        id,
		accountID: accountID,
		address:   address,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(id kernel.UUID, accountID kernel.UUID, address string,
	totalOrders int, totalSpent float64, loyaltyPoints int, lastOrderDate *time.Time) *Customer {
	return &Customer{
		id:            id,
		accountID:     accountID,
		address:       address,
		totalOrders:   totalOrders,
		totalSpent:    totalSpent,
		loyaltyPoints: loyaltyPoints,
		lastOrderDate: lastOrderDate,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the Customer was created through a constructor.
func (c *Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID           { return c.id }
func (c *Customer) AccountID() kernel.UUID    { return c.accountID }
func (c *Customer) Address() string           { return c.address }
func (c *Customer) TotalOrders() int          { return c.totalOrders }
func (c *Customer) TotalSpent() float64       { return c.totalSpent }
func (c *Customer) LoyaltyPoints() int        { return c.loyaltyPoints }
func (c *Customer) LastOrderDate() *time.Time { return c.lastOrderDate }

// RecordOrderPlaced counts a newly created order and stamps its time.
func (c *Customer) RecordOrderPlaced(at time.Time) {
	at = at.UTC()
	c.totalOrders++
	c.lastOrderDate = &at
}

// RecordFareCharged adds a computed fare to the spend total and accrues the
// loyalty points it earns. For orders created with an immediate fare this
// runs at creation; for open orders it runs when the fare is first computed
// at assignment time. The caller invokes it exactly once per order.
func (c *Customer) RecordFareCharged(fareTotal float64) error {
	if math.IsNaN(fareTotal) || math.IsInf(fareTotal, 0) || fareTotal < 0 {
		return errs.NewValueIsInvalidError("fareTotal")
	}

	c.totalSpent += fareTotal
	c.loyaltyPoints += int(fareTotal / loyaltyDivisor)
	return nil
}
