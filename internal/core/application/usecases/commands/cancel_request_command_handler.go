package commands

import (
	"context"
	"fmt"

	"loadmatrix/internal/core/ports"
	"loadmatrix/internal/pkg/errs"
)

// CancelRequestCommandHandler handles a customer withdrawing an outstanding
// assignment request. The order is cancelled and the driver freed.
type CancelRequestCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCancelRequestCommandHandler creates a handler for request withdrawal.
func NewCancelRequestCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle cancels the requested order on behalf of its customer.
func (h *CancelRequestCommandHandler) Handle(ctx context.Context, cmd CancelRequestCommand) error {
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

	requested, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !requested.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewNotAuthorizedError(
			fmt.Sprintf("customer %s", cmd.CustomerID()),
			fmt.Sprintf("cancel the request for order %s", cmd.OrderID()))
	}

	if err = requested.CancelRequest(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, requested); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, requested.ID(), requested.Status())
	return nil
}
