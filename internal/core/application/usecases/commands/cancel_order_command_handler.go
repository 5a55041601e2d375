package commands

import (
	"context"
	"fmt"

	"loadmatrix/internal/core/ports"
	"loadmatrix/internal/pkg/errs"
)

// CancelOrderCommandHandler handles a customer cancelling an order. Any
// non-terminal order can be cancelled; a delivered one cannot be taken back.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle cancels the order on behalf of its customer.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelled, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cancelled.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewNotAuthorizedError(
			fmt.Sprintf("customer %s", cmd.CustomerID()),
			fmt.Sprintf("cancel order %s", cmd.OrderID()))
	}

	if err = cancelled.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, cancelled); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, cancelled.ID(), cancelled.Status())
	return nil
}
