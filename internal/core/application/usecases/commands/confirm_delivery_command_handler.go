package commands

import (
	"context"

	"harvesthub/internal/core/ports"
)

// ConfirmDeliveryCommandHandler completes a delivery order when the assigned
// courier confirms drop-off. The aggregate rejects other couriers.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewConfirmDeliveryCommandHandler creates a handler for the confirm-delivery operation.
func NewConfirmDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the confirm-delivery command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if err = aggregate.ConfirmDelivery(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishStatusChange(ctx, h.publisher, aggregate)
	return nil
}
