package commands

import (
	"context"
	"fmt"

	"loadmatrix/internal/pkg/errs"
)

// RateDriverCommandHandler handles a customer rating the driver of one of
// their delivered orders.
type RateDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewRateDriverCommandHandler creates a handler for driver ratings.
func NewRateDriverCommandHandler(uowFactory UoWFactory) RateDriverCommandHandler {
	return RateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle folds the score into the driver's running average.
func (h *RateDriverCommandHandler) Handle(ctx context.Context, cmd RateDriverCommand) error {
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

	rated, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !rated.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewNotAuthorizedError(
			fmt.Sprintf("customer %s", cmd.CustomerID()),
			fmt.Sprintf("rate order %s", cmd.OrderID()))
	}

	if !rated.IsDelivered() || rated.DriverID() == nil {
		return errs.NewStateConflictError(fmt.Sprintf("order %s is not delivered", cmd.OrderID()))
	}

	assignee, err := uow.DriverRepository().Get(ctx, *rated.DriverID())
	if err != nil {
		return err
	}

	if err = assignee.RecordRating(cmd.Score()); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, assignee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
