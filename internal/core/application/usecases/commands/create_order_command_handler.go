package commands

import (
	"context"
	"time"

	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/core/domain/services"
	"loadmatrix/internal/core/ports"
)

// CreateOrderCommandHandler handles order creation in the driver-selection
// flow. The fare is computed from the route distance and cargo weight before
// the order is persisted, and the customer's ledger is charged in the same
// transaction.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.FareCalculator
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, calculator services.FareCalculator, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		notifier:   notifier,
	}
}

// Handle prices the trip, creates the order in pending_driver_selection and
// applies the creation-side ledger updates to the customer.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	fare, err := h.calculator.Calculate(cmd.Route().DistanceKm(), cmd.Cargo().WeightKg())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Route(), cmd.Cargo(), fare)
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
	if err = orderer.RecordFareCharged(fare.Total()); err != nil {
		return err
	}

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
