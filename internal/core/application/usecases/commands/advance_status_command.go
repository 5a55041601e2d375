package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand represents a driver reporting delivery progress:
// picked, delivering or delivered.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	target   order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to advance an order's status.
// The target must be a known status; whether it is reachable is decided by
// the aggregate against the current state.
func NewAdvanceStatusCommand(orderID kernel.UUID, driverID kernel.UUID, target order.Status) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being advanced.
func (c AdvanceStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the reporting driver.
func (c AdvanceStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Target returns the status the driver is reporting.
func (c AdvanceStatusCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AdvanceStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
