// Package services contains stateless domain services coordinating several
// aggregates. Checkout is the only one: it turns a cart into an order.
package services

import (
	"time"

	"harvesthub/internal/core/domain/model/cart"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/pkg/errs"
)

// CheckoutService converts a consumer's cart into a confirmed order. It owns
// the checkout rules that span cart and order: snapshotting line items,
// resolving the fulfillment address, and rejecting empty carts.
type CheckoutService interface {
	Checkout(
		orderID kernel.UUID,
		c *cart.Cart,
		customerName string,
		method order.FulfillmentMethod,
		street string,
		city string,
		now time.Time,
	) (*order.Order, error)
}

type checkoutService struct{}

// NewCheckoutService creates the checkout domain service.
func NewCheckoutService() CheckoutService {
	return &checkoutService{}
}

func (s *checkoutService) Checkout(
	orderID kernel.UUID,
	c *cart.Cart,
	customerName string,
	method order.FulfillmentMethod,
	street string,
	city string,
	now time.Time,
) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}

	address, err := resolveAddress(method, street, city)
	if err != nil {
		return nil, err
	}

	items, err := snapshotItems(c)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		orderID,
		c.CustomerID(),
		customerName,
		items,
		method,
		address,
		now,
	)
}

// resolveAddress picks the order's fulfillment address: the consumer-supplied
// street and city for delivery, the store sentinel for pickup.
func resolveAddress(method order.FulfillmentMethod, street, city string) (string, error) {
	if method == order.Pickup {
		return order.PickupAddress, nil
	}

	if street == "" {
		return "", errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return "", errs.NewValueIsRequiredError("city")
	}
	return street + ", " + city, nil
}

func snapshotItems(c *cart.Cart) ([]order.Item, error) {
	cartItems := c.Items()
	items := make([]order.Item, 0, len(cartItems))
	for _, ci := range cartItems {
		p := ci.Product()
		item, err := order.NewItem(
			p.ID(),
			p.BusinessID(),
			p.BusinessName(),
			p.Name(),
			p.Price(),
			p.Unit(),
			ci.Quantity(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
