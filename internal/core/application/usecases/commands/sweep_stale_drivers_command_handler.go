package commands

import (
	"context"
	"time"
)

// SweepStaleDriversCommandHandler marks silent drivers offline. The job
// scheduler runs it periodically; a driver who resumes reporting goes back
// online with the next position report.
type SweepStaleDriversCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSweepStaleDriversCommandHandler creates a handler for the liveness sweep.
func NewSweepStaleDriversCommandHandler(uowFactory DriverUoWFactory) SweepStaleDriversCommandHandler {
	return SweepStaleDriversCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sweeps every stale driver offline and returns how many were swept.
func (h *SweepStaleDriversCommandHandler) Handle(ctx context.Context, cmd SweepStaleDriversCommand) (int, error) {
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

	cutoff := time.Now().UTC().Add(-cmd.Threshold())
	stale, err := uow.DriverRepository().GetAllStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, silent := range stale {
		silent.GoOffline()
		if err = uow.DriverRepository().Update(ctx, silent); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
