package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents a pickup order being collected at the
// store, completing it. The actor may be the purchasing consumer or one of
// the owning businesses handing the order over.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a validated picked-up command.
func NewMarkPickedUpCommand(orderID, actorID kernel.UUID) (MarkPickedUpCommand, error) {
	cmd := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the targeted order's identifier.
func (c MarkPickedUpCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of whoever hands the order over.
func (c MarkPickedUpCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *MarkPickedUpCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkPickedUpCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
