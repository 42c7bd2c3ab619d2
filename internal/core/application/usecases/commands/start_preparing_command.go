package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrStartPreparingCommandIsNotConstructed = errors.New(
	"StartPreparingCommand must be created via NewStartPreparingCommand constructor",
)

// StartPreparingCommand represents a business moving an order into
// preparation ahead of the kitchen timer.
type StartPreparingCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPreparingCommand creates a validated start-preparing command.
func NewStartPreparingCommand(orderID, businessID kernel.UUID) (StartPreparingCommand, error) {
	cmd := StartPreparingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBusinessID(businessID),
	); err != nil {
		return StartPreparingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparingCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparingCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c StartPreparingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BusinessID returns the acting business's identifier.
func (c StartPreparingCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c *StartPreparingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartPreparingCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	c.businessID = businessID
	return nil
}
