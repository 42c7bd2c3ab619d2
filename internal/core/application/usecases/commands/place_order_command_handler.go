package commands

import (
	"context"
	"log/slog"
	"time"

	"harvesthub/internal/core/domain/services"
	"harvesthub/internal/core/ports"
)

// PlaceOrderCommandHandler handles checkout: it loads the consumer's cart,
// runs the checkout domain service, persists the resulting order, and clears
// the cart once the order is committed.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	carts      ports.CartRepository
	checkout   services.CheckoutService
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for the checkout operation.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	carts ports.CartRepository,
	checkout services.CheckoutService,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		carts:      carts,
		checkout:   checkout,
		publisher:  publisher,
	}
}

// Handle processes the checkout command. The cart is cleared only after the
// order commit succeeds, so a failed checkout leaves the cart untouched.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	aggregate, err := h.checkout.Checkout(
		cmd.OrderID(), c, cmd.CustomerName(), cmd.Method(), cmd.Street(), cmd.City(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	c.Clear()
	if err = h.carts.Save(ctx, c); err != nil {
		slog.Warn("failed to clear cart after checkout",
			"customerId", cmd.CustomerID().String(), "error", err)
	}

	publishStatusChange(ctx, h.publisher, aggregate)
	return nil
}
