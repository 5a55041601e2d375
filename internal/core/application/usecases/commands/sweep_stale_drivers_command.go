package commands

import (
	"errors"
	"time"

	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrSweepStaleDriversCommandIsNotConstructed = errors.New(
	"SweepStaleDriversCommand must be created via NewSweepStaleDriversCommand constructor",
)

// SweepStaleDriversCommand represents a liveness sweep: drivers that stopped
// reporting their position are marked offline so they drop out of matching.
type SweepStaleDriversCommand struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewSweepStaleDriversCommand creates a sweep command. The threshold is how
// long a driver may stay silent before being considered gone.
func NewSweepStaleDriversCommand(threshold time.Duration) (SweepStaleDriversCommand, error) {
	if threshold <= 0 {
		return SweepStaleDriversCommand{}, errs.NewValueIsInvalidError("threshold")
	}

	return SweepStaleDriversCommand{
		threshold: threshold,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepStaleDriversCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleDriversCommandIsNotConstructed)
}

// Threshold returns the silence duration after which a driver is stale.
func (c SweepStaleDriversCommand) Threshold() time.Duration {
	return c.threshold
}
