package commands

import (
	"context"

	"loadmatrix/internal/core/domain/model/driver"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/services"
)

// lockAssignableDriver loads a driver with its row locked for the remainder
// of the transaction and re-checks every assignment guard behind the lock:
// account eligibility flags and the active-order count. Holding the row lock
// while counting is what serializes two concurrent assignments to the same
// driver, so one of them observes the other's active order and fails.
func lockAssignableDriver(ctx context.Context, uow UoW, matcher services.DriverMatcher, driverID kernel.UUID) (*driver.Driver, error) {
	assignee, err := uow.DriverRepository().GetForUpdate(ctx, driverID)
	if err != nil {
		return nil, err
	}

	driverAccount, err := uow.AccountRepository().Get(ctx, assignee.AccountID())
	if err != nil {
		return nil, err
	}

	activeOrders, err := uow.OrderRepository().CountActiveByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	candidate := services.Candidate{Driver: assignee, Account: driverAccount}
	if err = matcher.CheckAssignable(candidate, activeOrders); err != nil {
		return nil, err
	}

	return assignee, nil
}
