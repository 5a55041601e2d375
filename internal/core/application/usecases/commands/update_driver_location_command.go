package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a driver's position report.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command to report a position.
func NewUpdateDriverLocationCommand(driverID kernel.UUID, location kernel.GeoPoint) (UpdateDriverLocationCommand, error) {
	cmd := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setLocation(location),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// DriverID returns the identifier of the reporting driver.
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Location returns the reported position.
func (c UpdateDriverLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateDriverLocationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
