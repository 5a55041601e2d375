package commands

import (
	"context"

	"loadmatrix/internal/core/ports"
)

// AcceptRequestCommandHandler handles a driver accepting an assignment
// request. Only the requested driver can accept, and the optimistic version
// check on the order write catches a concurrent cancel or reject.
type AcceptRequestCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptRequestCommandHandler creates a handler for request acceptance.
func NewAcceptRequestCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) AcceptRequestCommandHandler {
	return AcceptRequestCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle moves the order from requested to accepted.
func (h *AcceptRequestCommandHandler) Handle(ctx context.Context, cmd AcceptRequestCommand) error {
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

	if err = requested.AcceptRequest(cmd.DriverID()); err != nil {
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
