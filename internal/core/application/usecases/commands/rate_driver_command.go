package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/driver"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrRateDriverCommandIsNotConstructed = errors.New(
	"RateDriverCommand must be created via NewRateDriverCommand constructor",
)

// RateDriverCommand represents a customer rating the driver of a delivered
// order.
type RateDriverCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	score      float64

	guard guard.ConstructorGuard
}

// NewRateDriverCommand creates a command to rate a driver. The score must lie
// within the rating scale.
func NewRateDriverCommand(orderID kernel.UUID, customerID kernel.UUID, score float64) (RateDriverCommand, error) {
	cmd := RateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setScore(score),
	); err != nil {
		return RateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDriverCommand) Validate() error {
	return c.guard.Validate(ErrRateDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c RateDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the rating customer.
func (c RateDriverCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Score returns the rating score.
func (c RateDriverCommand) Score() float64 {
	return c.score
}

func (c *RateDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateDriverCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RateDriverCommand) setScore(score float64) error {
	if score < driver.MinRating || score > driver.MaxRating {
		return errs.NewValueIsOutOfRangeError("score", score, driver.MinRating, driver.MaxRating)
	}

	c.score = score
	return nil
}
