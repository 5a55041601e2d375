package commands

import (
	"context"
	"time"
)

// UpdateDriverLocationCommandHandler handles driver position reports. A
// report also marks the driver online and refreshes the liveness timestamp
// the stale sweep watches. The driver's own reports are the only writer of
// these fields, so there is no cross-actor contention here.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for position reports.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the driver's position.
func (h *UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
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

	reporter, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = reporter.UpdateLocation(cmd.Location(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, reporter); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
