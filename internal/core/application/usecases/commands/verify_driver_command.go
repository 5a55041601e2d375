package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrVerifyDriverCommandIsNotConstructed = errors.New(
	"VerifyDriverCommand must be created via NewVerifyDriverCommand constructor",
)

// VerifyDriverCommand represents an admin approving a driver's documents.
type VerifyDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyDriverCommand creates a command to verify a driver.
func NewVerifyDriverCommand(driverID kernel.UUID) (VerifyDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return VerifyDriverCommand{}, err
	}

	return VerifyDriverCommand{
		driverID: driverID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDriverCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver being verified.
func (c VerifyDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
