package commands

import (
	"context"

	"harvesthub/internal/core/ports"
)

// StartPreparingCommandHandler moves an order from Confirmed to Preparing on
// behalf of a business that supplied at least one of its items.
type StartPreparingCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewStartPreparingCommandHandler creates a handler for the start-preparing operation.
func NewStartPreparingCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) StartPreparingCommandHandler {
	return StartPreparingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the start-preparing command. Rejects businesses that own
// none of the order's items with ErrActorNotAuthorized.
func (h *StartPreparingCommandHandler) Handle(ctx context.Context, cmd StartPreparingCommand) error {
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

	if err = aggregate.StartPreparing(); err != nil {
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
