package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand represents a driver toggling whether they
// want to receive work.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetDriverAvailabilityCommand creates a command to set the availability toggle.
func NewSetDriverAvailabilityCommand(driverID kernel.UUID, available bool) (SetDriverAvailabilityCommand, error) {
	if err := driverID.Validate(); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}

	return SetDriverAvailabilityCommand{
		driverID:  driverID,
		available: available,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver.
func (c SetDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Available returns the requested toggle state.
func (c SetDriverAvailabilityCommand) Available() bool {
	return c.available
}
