// Package cart models a consumer's shopping cart. The cart is session state:
// it holds product snapshots with quantities and hands its contents to the
// checkout flow, which clears it once an order is placed.
package cart

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/product"
	"harvesthub/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart bypassed NewCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
	// ErrCartIsEmpty is returned when checkout is attempted on an empty cart.
	ErrCartIsEmpty = errors.New("cart is empty")
	// ErrQuantityIsInvalid is returned for item quantities below 1.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be at least 1")
)

// Item is a product snapshot plus a quantity. Quantity is always >= 1;
// items that would reach zero are removed from the cart instead.
type Item struct {
	product  *product.Product
	quantity int
}

// NewItem creates a cart item with a positive quantity.
func NewItem(p *product.Product, quantity int) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, ErrQuantityIsInvalid
	}
	return Item{product: p, quantity: quantity}, nil
}

// Product returns the snapshotted product.
func (i Item) Product() *product.Product { return i.product }

// Quantity returns the item quantity.
func (i Item) Quantity() int { return i.quantity }

// Subtotal returns price x quantity for the item.
func (i Item) Subtotal() kernel.Money {
	return i.product.Price().MulQty(i.quantity)
}

// Cart aggregates the items a consumer intends to buy. It preserves insertion
// order so the checkout snapshot matches what the consumer saw.
type Cart struct {
	customerID    kernel.UUID
	items         []Item
	isConstructed bool
}

// NewCart creates an empty cart for a consumer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{customerID: customerID, isConstructed: true}, nil
}

// Validate ensures the Cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning consumer's identifier.
func (c *Cart) CustomerID() kernel.UUID { return c.customerID }

// Items returns a copy of the cart contents.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddProduct adds one unit of a product, incrementing the quantity when the
// product is already in the cart.
func (c *Cart) AddProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	for idx := range c.items {
		if c.items[idx].product.ID().IsEqual(p.ID()) {
			c.items[idx].quantity++
			return nil
		}
	}

	item, err := NewItem(p, 1)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// ChangeQuantity adjusts an item's quantity by delta. An item that reaches
// zero (or below) is removed; quantities are never stored at 0. Unknown
// product IDs are reported as not found.
func (c *Cart) ChangeQuantity(productID kernel.UUID, delta int) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	for idx := range c.items {
		if !c.items[idx].product.ID().IsEqual(productID) {
			continue
		}

		c.items[idx].quantity += delta
		if c.items[idx].quantity < 1 {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
		}
		return nil
	}

	return errs.NewObjectNotFoundError("productId", productID.String())
}

// Subtotal returns the sum of item subtotals, before any delivery fee.
func (c *Cart) Subtotal() kernel.Money {
	var sum kernel.Money
	for _, item := range c.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

// Clear removes all items. Called by checkout after the order snapshot is
// taken, so the same cart cannot be checked out twice.
func (c *Cart) Clear() {
	c.items = nil
}
