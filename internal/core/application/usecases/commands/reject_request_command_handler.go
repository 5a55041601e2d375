package commands

import (
	"context"

	"loadmatrix/internal/core/ports"
)

// RejectRequestCommandHandler handles a driver declining an assignment
// request. The order drops its driver and returns to pending, where it can
// be requested again or claimed from the pool.
type RejectRequestCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRejectRequestCommandHandler creates a handler for request rejection.
func NewRejectRequestCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle moves the order from requested back to pending.
func (h *RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) error {
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

	if err = requested.RejectRequest(cmd.DriverID()); err != nil {
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
