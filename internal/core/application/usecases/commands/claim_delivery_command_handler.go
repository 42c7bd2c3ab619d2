package commands

import (
	"context"
	"errors"

	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/ports"
	"harvesthub/internal/pkg/errs"
)

// ClaimDeliveryCommandHandler assigns a delivery order to the first courier
// who claims it. Two guards enforce first-writer-wins:
//
//   - the aggregate rejects a claim when a driver is already recorded
//   - the repository's optimistic update rejects a write that raced a
//     concurrent claim of the same snapshot
//
// Both failure modes surface as order.ErrOrderAlreadyClaimed, so the losing
// courier always gets the same answer.
type ClaimDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewClaimDeliveryCommandHandler creates a handler for the claim operation.
func NewClaimDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ClaimDeliveryCommandHandler {
	return ClaimDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the claim command.
func (h *ClaimDeliveryCommandHandler) Handle(ctx context.Context, cmd ClaimDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Claim(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return order.ErrOrderAlreadyClaimed
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(ctx, h.publisher, aggregate)
	return nil
}
