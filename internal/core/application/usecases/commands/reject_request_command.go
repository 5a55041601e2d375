package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrRejectRequestCommandIsNotConstructed = errors.New(
	"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
)

// RejectRequestCommand represents a driver declining an assignment request.
// The order returns to the open pool.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectRequestCommand creates a command for a driver to reject a request.
func NewRejectRequestCommand(orderID kernel.UUID, driverID kernel.UUID) (RejectRequestCommand, error) {
	cmd := RejectRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return RejectRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (c RejectRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the rejecting driver.
func (c RejectRequestCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *RejectRequestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectRequestCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
