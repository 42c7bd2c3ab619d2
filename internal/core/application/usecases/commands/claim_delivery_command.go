package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrClaimDeliveryCommandIsNotConstructed = errors.New(
	"ClaimDeliveryCommand must be created via NewClaimDeliveryCommand constructor",
)

// ClaimDeliveryCommand represents a courier taking an available delivery job.
// Claims race: the first courier whose write lands wins the order.
type ClaimDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimDeliveryCommand creates a validated claim command.
func NewClaimDeliveryCommand(orderID, courierID kernel.UUID) (ClaimDeliveryCommand, error) {
	cmd := ClaimDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ClaimDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrClaimDeliveryCommandIsNotConstructed)
}

// OrderID returns the claimed order's identifier.
func (c ClaimDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the claiming courier's identifier.
func (c ClaimDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ClaimDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
