package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrCancelRequestCommandIsNotConstructed = errors.New(
	"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
)

// CancelRequestCommand represents a customer withdrawing an outstanding
// assignment request before the driver has answered.
type CancelRequestCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRequestCommand creates a command to withdraw a request.
func NewCancelRequestCommand(orderID kernel.UUID, customerID kernel.UUID) (CancelRequestCommand, error) {
	cmd := CancelRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CancelRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (c CancelRequestCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the acting customer.
func (c CancelRequestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CancelRequestCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelRequestCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
