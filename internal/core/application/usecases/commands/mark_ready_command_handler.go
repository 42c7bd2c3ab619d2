package commands

import (
	"context"

	"harvesthub/internal/core/ports"
)

// MarkReadyCommandHandler moves a pickup order from Preparing to
// ReadyForPickup on behalf of an owning business.
type MarkReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewMarkReadyCommandHandler creates a handler for the mark-ready operation.
func NewMarkReadyCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the mark-ready command. Delivery orders are rejected by
// the aggregate; foreign businesses get ErrActorNotAuthorized.
func (h *MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
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

	if !aggregate.BelongsToBusiness(cmd.BusinessID()) {
		return ErrActorNotAuthorized
	}

	if err = aggregate.MarkReadyForPickup(); err != nil {
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
