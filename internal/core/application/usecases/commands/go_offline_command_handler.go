package commands

import (
	"context"
)

// GoOfflineCommandHandler handles a driver's explicit offline call. The
// driver immediately drops out of matching; active orders are unaffected.
type GoOfflineCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewGoOfflineCommandHandler creates a handler for the offline call.
func NewGoOfflineCommandHandler(uowFactory DriverUoWFactory) GoOfflineCommandHandler {
	return GoOfflineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the driver offline.
func (h *GoOfflineCommandHandler) Handle(ctx context.Context, cmd GoOfflineCommand) error {
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

	leaver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	leaver.GoOffline()

	if err = uow.DriverRepository().Update(ctx, leaver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
