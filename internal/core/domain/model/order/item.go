package order

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

// ErrItemQuantityIsInvalid is returned for item quantities below 1.
var ErrItemQuantityIsInvalid = errs.NewValueIsInvalidError("item quantity must be at least 1")

// Item is an immutable line-item snapshot taken at checkout. It copies the
// product's price and identity so later catalog changes never retroactively
// affect a placed order.
type Item struct {
	productID    kernel.UUID
	businessID   kernel.UUID
	businessName string
	name         string
	price        kernel.Money
	unit         string
	quantity     int
}

// NewItem creates a validated line-item snapshot.
func NewItem(
	productID kernel.UUID,
	businessID kernel.UUID,
	businessName string,
	name string,
	price kernel.Money,
	unit string,
	quantity int,
) (Item, error) {
	if err := errors.Join(productID.Validate(), businessID.Validate(), price.Validate()); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 {
		return Item{}, ErrItemQuantityIsInvalid
	}

	return Item{
		productID:    productID,
		businessID:   businessID,
		businessName: businessName,
		name:         name,
		price:        price,
		unit:         unit,
		quantity:     quantity,
	}, nil
}

// ProductID returns the snapshotted product identifier.
func (i Item) ProductID() kernel.UUID { return i.productID }

// BusinessID returns the identifier of the business that supplied the item.
func (i Item) BusinessID() kernel.UUID { return i.businessID }

// BusinessName returns the supplying business's display name.
func (i Item) BusinessName() string { return i.businessName }

// Name returns the product name at purchase time.
func (i Item) Name() string { return i.name }

// Price returns the price-at-purchase per unit.
func (i Item) Price() kernel.Money { return i.price }

// Unit returns the sale unit at purchase time.
func (i Item) Unit() string { return i.unit }

// Quantity returns the purchased quantity.
func (i Item) Quantity() int { return i.quantity }

// Subtotal returns price x quantity.
func (i Item) Subtotal() kernel.Money {
	return i.price.MulQty(i.quantity)
}
