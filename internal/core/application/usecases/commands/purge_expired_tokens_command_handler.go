package commands

import (
	"context"
	"time"
)

// PurgeExpiredTokensCommandHandler deletes expired reset tokens. The job
// scheduler runs it periodically.
type PurgeExpiredTokensCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewPurgeExpiredTokensCommandHandler creates a handler for the purge.
func NewPurgeExpiredTokensCommandHandler(uowFactory AccountUoWFactory) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes every expired token and returns how many were removed.
func (h *PurgeExpiredTokensCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredTokensCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.ResetTokenRepository().DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
