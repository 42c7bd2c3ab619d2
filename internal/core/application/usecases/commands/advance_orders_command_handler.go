package commands

import (
	"context"
	"errors"
	"log/slog"

	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/ports"
	"harvesthub/internal/pkg/errs"
)

// AdvanceOrdersCommandHandler applies one simulation tick to all active
// orders: kitchen timers fire, pickup orders become ready, and in-transit
// drivers gain progress. Orders the tick does not change are not written.
//
// Faults are isolated per order: one bad row cannot stall the rest of the
// marketplace. A version conflict on write means an actor command raced the
// tick on the same order; the tick yields and picks the order up next second.
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAdvanceOrdersCommandHandler creates a handler for the simulation tick.
func NewAdvanceOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one tick.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) error {
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
	active, err := orderRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	var advanced []*order.Order
	var tickErrs []error

	for _, aggregate := range active {
		prevStatus := aggregate.Status()

		changed, advanceErr := aggregate.Advance(cmd.Now())
		if advanceErr != nil {
			tickErrs = append(tickErrs, advanceErr)
			continue
		}
		if !changed {
			continue
		}

		if updateErr := orderRepo.Update(ctx, aggregate); updateErr != nil {
			if errors.Is(updateErr, errs.ErrVersionIsInvalid) {
				slog.Debug("tick lost race on order, retrying next second",
					"orderId", aggregate.ID().String())
				continue
			}
			tickErrs = append(tickErrs, updateErr)
			continue
		}

		if aggregate.Status() != prevStatus {
			advanced = append(advanced, aggregate)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range advanced {
		publishStatusChange(ctx, h.publisher, aggregate)
	}

	return errors.Join(tickErrs...)
}
