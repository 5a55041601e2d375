package commands

import (
	"context"

	"loadmatrix/internal/core/domain/services"
	"loadmatrix/internal/core/ports"
)

// ClaimOrderCommandHandler handles a driver claiming an order from the open
// pool. Claiming skips the request handshake: the order goes straight to
// assigned, with the fare computed now that the trip has a driver.
//
// Two drivers racing for the same pending order are split by the optimistic
// version check on the order write: both load the order at the same version,
// the first update bumps it, the second fails with a concurrency conflict.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.DriverMatcher
	calculator services.FareCalculator
	notifier   ports.Notifier
}

// NewClaimOrderCommandHandler creates a handler for order claiming.
func NewClaimOrderCommandHandler(uowFactory UoWFactory, matcher services.DriverMatcher,
	calculator services.FareCalculator, notifier ports.Notifier) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		calculator: calculator,
		notifier:   notifier,
	}
}

// Handle assigns an open order to the claiming driver.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimed, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignee, err := lockAssignableDriver(ctx, uow, h.matcher, cmd.DriverID())
	if err != nil {
		return err
	}

	fare, err := h.calculator.Calculate(claimed.DistanceKm(), claimed.Cargo().WeightKg())
	if err != nil {
		return err
	}

	fareWasDeferred := claimed.Fare() == nil
	if err = claimed.Claim(assignee.ID(), fare); err != nil {
		return err
	}

	if fareWasDeferred {
		orderer, customerErr := uow.CustomerRepository().Get(ctx, claimed.CustomerID())
		if customerErr != nil {
			return customerErr
		}
		if err = orderer.RecordFareCharged(fare.Total()); err != nil {
			return err
		}
		if err = uow.CustomerRepository().Update(ctx, orderer); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, claimed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, claimed.ID(), claimed.Status())
	return nil
}
