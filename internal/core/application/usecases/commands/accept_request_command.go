package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrAcceptRequestCommandIsNotConstructed = errors.New(
	"AcceptRequestCommand must be created via NewAcceptRequestCommand constructor",
)

// AcceptRequestCommand represents a driver accepting an assignment request.
type AcceptRequestCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptRequestCommand creates a command for a driver to accept a request.
func NewAcceptRequestCommand(orderID kernel.UUID, driverID kernel.UUID) (AcceptRequestCommand, error) {
	cmd := AcceptRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRequestCommandIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (c AcceptRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the accepting driver.
func (c AcceptRequestCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AcceptRequestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptRequestCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
