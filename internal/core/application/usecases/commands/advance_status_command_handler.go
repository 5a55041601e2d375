package commands

import (
	"context"

	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/core/ports"
	"loadmatrix/internal/pkg/errs"
)

// AdvanceStatusCommandHandler handles delivery progress reports.
//
// A report that reaches delivered also settles the driver's ledger in the
// same transaction: the delivery count and the earnings from the fare's
// driver share. The transition into delivered happens exactly once per
// order (terminal states reject every further move), so a repeated report
// cannot double-apply the ledger.
type AdvanceStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAdvanceStatusCommandHandler creates a handler for progress reports.
func NewAdvanceStatusCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle advances the order and, on delivery, settles the driver's ledger.
func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
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

	progressing, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = progressing.AdvanceTo(cmd.DriverID(), cmd.Target()); err != nil {
		return err
	}

	if progressing.IsDelivered() {
		if err = h.settleDelivery(ctx, uow, progressing); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, progressing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, progressing.ID(), progressing.Status())
	return nil
}

func (h *AdvanceStatusCommandHandler) settleDelivery(ctx context.Context, uow UoW, delivered *order.Order) error {
	fare := delivered.Fare()
	if fare == nil {
		return errs.NewStateConflictError("delivered order has no fare")
	}

	assignee, err := uow.DriverRepository().Get(ctx, *delivered.DriverID())
	if err != nil {
		return err
	}

	if err = assignee.RecordDelivery(fare.DriverShare()); err != nil {
		return err
	}

	return uow.DriverRepository().Update(ctx, assignee)
}
