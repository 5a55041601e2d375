package commands

import (
	"context"
	"time"

	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/core/ports"
)

// CreateOpenOrderCommandHandler handles order creation in the open-pool flow.
// No fare is computed; the customer's spend is charged later, when a driver
// is attached and the fare becomes known.
type CreateOpenOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCreateOpenOrderCommandHandler creates a handler for open order creation.
func NewCreateOpenOrderCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CreateOpenOrderCommandHandler {
	return CreateOpenOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle creates the order in pending and counts it on the customer's ledger.
func (h *CreateOpenOrderCommandHandler) Handle(ctx context.Context, cmd CreateOpenOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOpenOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Route(), cmd.Cargo())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	orderer.RecordOrderPlaced(time.Now().UTC())

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, orderer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, newOrder.ID(), newOrder.Status())
	return nil
}
