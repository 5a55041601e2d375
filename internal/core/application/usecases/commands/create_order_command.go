package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create an order in the
// driver-selection flow: the trip is priced immediately and the customer
// picks a driver from the ranked list afterwards.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	route      order.Route
	cargo      order.Cargo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The route and cargo value objects carry their own validation; the command
// only checks that everything was constructed.
func NewCreateOrderCommand(orderID kernel.UUID, customerID kernel.UUID, route order.Route, cargo order.Cargo) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRoute(route),
		cmd.setCargo(cargo),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Route returns the pickup and drop information.
func (c CreateOrderCommand) Route() order.Route {
	return c.route
}

// Cargo returns the cargo information.
func (c CreateOrderCommand) Cargo() order.Cargo {
	return c.cargo
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRoute(route order.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	c.route = route
	return nil
}

func (c *CreateOrderCommand) setCargo(cargo order.Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}

	c.cargo = cargo
	return nil
}
