package commands

import (
	"context"
	"fmt"

	"loadmatrix/internal/core/domain/services"
	"loadmatrix/internal/core/ports"
	"loadmatrix/internal/pkg/errs"
)

// SelectDriverCommandHandler handles the customer's driver choice.
//
// The whole assignment runs in one transaction: the driver row is locked,
// eligibility and the active-order count are re-checked behind the lock, the
// fare is recomputed, and the order moves to requested. Two customers racing
// for the same driver serialize on the row lock, so the loser sees the
// winner's active order and fails cleanly.
type SelectDriverCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.DriverMatcher
	calculator services.FareCalculator
	notifier   ports.Notifier
}

// NewSelectDriverCommandHandler creates a handler for driver selection.
func NewSelectDriverCommandHandler(uowFactory UoWFactory, matcher services.DriverMatcher,
	calculator services.FareCalculator, notifier ports.Notifier) SelectDriverCommandHandler {
	return SelectDriverCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		calculator: calculator,
		notifier:   notifier,
	}
}

// Handle sends an assignment request to the chosen driver.
func (h *SelectDriverCommandHandler) Handle(ctx context.Context, cmd SelectDriverCommand) error {
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

	selected, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !selected.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewNotAuthorizedError(
			fmt.Sprintf("customer %s", cmd.CustomerID()),
			fmt.Sprintf("select a driver for order %s", cmd.OrderID()))
	}

	assignee, err := lockAssignableDriver(ctx, uow, h.matcher, cmd.DriverID())
	if err != nil {
		return err
	}

	fare, err := h.calculator.Calculate(selected.DistanceKm(), selected.Cargo().WeightKg())
	if err != nil {
		return err
	}

	fareWasDeferred := selected.Fare() == nil
	if err = selected.RequestDriver(assignee.ID(), fare); err != nil {
		return err
	}

	if fareWasDeferred {
		orderer, customerErr := uow.CustomerRepository().Get(ctx, selected.CustomerID())
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

	if err = uow.OrderRepository().Update(ctx, selected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, selected.ID(), selected.Status())
	return nil
}
