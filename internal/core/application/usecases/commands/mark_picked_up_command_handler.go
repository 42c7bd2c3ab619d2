package commands

import (
	"context"

	"harvesthub/internal/core/ports"
)

// MarkPickedUpCommandHandler completes a pickup order at hand-over. The
// purchasing consumer and the owning businesses may both fire it.
type MarkPickedUpCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewMarkPickedUpCommandHandler creates a handler for the picked-up operation.
func NewMarkPickedUpCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the picked-up command. Actors unrelated to the order get
// ErrActorNotAuthorized.
func (h *MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
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

	if !aggregate.IsCustomer(cmd.ActorID()) && !aggregate.BelongsToBusiness(cmd.ActorID()) {
		return ErrActorNotAuthorized
	}

	if err = aggregate.MarkPickedUp(); err != nil {
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
