package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrSelectDriverCommandIsNotConstructed = errors.New(
	"SelectDriverCommand must be created via NewSelectDriverCommand constructor",
)

// SelectDriverCommand represents a customer's choice of driver for an order:
// an assignment request is sent to that driver, who then accepts or rejects.
type SelectDriverCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectDriverCommand creates a command to request a driver for an order.
func NewSelectDriverCommand(orderID kernel.UUID, customerID kernel.UUID, driverID kernel.UUID) (SelectDriverCommand, error) {
	cmd := SelectDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDriverID(driverID),
	); err != nil {
		return SelectDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectDriverCommand) Validate() error {
	return c.guard.Validate(ErrSelectDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c SelectDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the acting customer.
func (c SelectDriverCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DriverID returns the identifier of the chosen driver.
func (c SelectDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *SelectDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SelectDriverCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SelectDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
