package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrGoOfflineCommandIsNotConstructed = errors.New(
	"GoOfflineCommand must be created via NewGoOfflineCommand constructor",
)

// GoOfflineCommand represents a driver explicitly going offline.
type GoOfflineCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGoOfflineCommand creates a command for a driver to go offline.
func NewGoOfflineCommand(driverID kernel.UUID) (GoOfflineCommand, error) {
	if err := driverID.Validate(); err != nil {
		return GoOfflineCommand{}, err
	}

	return GoOfflineCommand{
		driverID: driverID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GoOfflineCommand) Validate() error {
	return c.guard.Validate(ErrGoOfflineCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver going offline.
func (c GoOfflineCommand) DriverID() kernel.UUID {
	return c.driverID
}
