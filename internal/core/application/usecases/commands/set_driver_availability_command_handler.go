package commands

import (
	"context"
)

// SetDriverAvailabilityCommandHandler handles the driver's manual
// availability toggle.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverAvailabilityCommandHandler creates a handler for the toggle.
func NewSetDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the driver's availability.
func (h *SetDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetDriverAvailabilityCommand) error {
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

	toggled, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	toggled.SetAvailability(cmd.Available())

	if err = uow.DriverRepository().Update(ctx, toggled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
