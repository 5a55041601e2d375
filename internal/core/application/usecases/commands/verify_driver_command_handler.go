package commands

import (
	"context"
)

// VerifyDriverCommandHandler handles the admin's document approval.
type VerifyDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewVerifyDriverCommandHandler creates a handler for driver verification.
func NewVerifyDriverCommandHandler(uowFactory DriverUoWFactory) VerifyDriverCommandHandler {
	return VerifyDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the driver verified.
func (h *VerifyDriverCommandHandler) Handle(ctx context.Context, cmd VerifyDriverCommand) error {
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

	verified, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	verified.Verify()

	if err = uow.DriverRepository().Update(ctx, verified); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
