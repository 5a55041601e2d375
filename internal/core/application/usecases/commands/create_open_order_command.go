package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/pkg/guard"
)

var ErrCreateOpenOrderCommandIsNotConstructed = errors.New(
	"CreateOpenOrderCommand must be created via NewCreateOpenOrderCommand constructor",
)

// CreateOpenOrderCommand represents a request to post an order to the open
// pool, where any eligible driver can claim it. Pricing is deferred until a
// driver is attached.
type CreateOpenOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	route      order.Route
	cargo      order.Cargo

	guard guard.ConstructorGuard
}

// NewCreateOpenOrderCommand creates a command to post an open order.
func NewCreateOpenOrderCommand(orderID kernel.UUID, customerID kernel.UUID, route order.Route, cargo order.Cargo) (CreateOpenOrderCommand, error) {
	cmd := CreateOpenOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRoute(route),
		cmd.setCargo(cargo),
	); err != nil {
		return CreateOpenOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOpenOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOpenOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOpenOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Route returns the pickup and drop information.
func (c CreateOpenOrderCommand) Route() order.Route {
	return c.route
}

// Cargo returns the cargo information.
func (c CreateOpenOrderCommand) Cargo() order.Cargo {
	return c.cargo
}

func (c *CreateOpenOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOpenOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOpenOrderCommand) setRoute(route order.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreateOpenOrderCommand) setCargo(cargo order.Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}

	c.cargo = cargo
	return nil
}
