package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents a business declaring a pickup order ready for
// collection ahead of the simulation timer.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a validated mark-ready command.
func NewMarkReadyCommand(orderID, businessID kernel.UUID) (MarkReadyCommand, error) {
	cmd := MarkReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBusinessID(businessID),
	); err != nil {
		return MarkReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c MarkReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BusinessID returns the acting business's identifier.
func (c MarkReadyCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c *MarkReadyCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkReadyCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	c.businessID = businessID
	return nil
}
