// Package product models catalog items listed by businesses. A product is
// immutable once listed; businesses can only delist it. Cart and order items
// snapshot product data at purchase time, so later catalog changes never
// affect placed orders.
package product

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through the NewProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrNameIsRequired is returned when a product has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrBusinessNameIsRequired is returned when the owning business name is empty.
	ErrBusinessNameIsRequired = errs.NewValueIsRequiredError("business name")
	// ErrUnitIsRequired is returned when the sale unit (lb, dozen, each) is empty.
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")
)

// Product is a catalog item offered by a business. Prices are Money cents;
// OriginalPrice, when present, records the pre-discount price for display.
type Product struct {
	id            kernel.UUID
	businessID    kernel.UUID
	businessName  string
	name          string
	description   string
	price         kernel.Money
	originalPrice *kernel.Money
	unit          string
	category      string
	location      string
	imageURL      string
	available     bool
	dietary       []string

	isConstructed bool
}

// NewProduct creates a validated catalog item. The product starts available.
func NewProduct(
	id kernel.UUID,
	businessID kernel.UUID,
	businessName string,
	name string,
	description string,
	price kernel.Money,
	unit string,
	category string,
	location string,
) (*Product, error) {
	p := &Product{
		description:   description,
		category:      category,
		location:      location,
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setBusiness(businessID, businessName),
		p.setName(name),
		p.setPrice(price),
		p.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// BusinessID returns the identifier of the owning business.
func (p *Product) BusinessID() kernel.UUID { return p.businessID }

// BusinessName returns the display name of the owning business.
func (p *Product) BusinessName() string { return p.businessName }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// Price returns the current sale price.
func (p *Product) Price() kernel.Money { return p.price }

// OriginalPrice returns the pre-discount price, or nil when not discounted.
func (p *Product) OriginalPrice() *kernel.Money { return p.originalPrice }

// Unit returns the sale unit, e.g. "lb" or "dozen".
func (p *Product) Unit() string { return p.unit }

// Category returns the catalog category.
func (p *Product) Category() string { return p.category }

// Location returns the business location the product is sold from.
func (p *Product) Location() string { return p.location }

// ImageURL returns the catalog image URL.
func (p *Product) ImageURL() string { return p.imageURL }

// Available reports whether the product is currently listed.
func (p *Product) Available() bool { return p.available }

// Dietary returns a copy of the dietary tag set.
func (p *Product) Dietary() []string {
	out := make([]string, len(p.dietary))
	copy(out, p.dietary)
	return out
}

// SetImageURL attaches a catalog image. Allowed any time; images are display
// data, not part of the immutable listing.
func (p *Product) SetImageURL(url string) {
	p.imageURL = url
}

// SetDietary replaces the dietary tag set.
func (p *Product) SetDietary(tags []string) {
	p.dietary = make([]string, len(tags))
	copy(p.dietary, tags)
}

// Discount marks the product as discounted, preserving the original price.
// The discounted price must be lower than the current price.
func (p *Product) Discount(newPrice kernel.Money) error {
	if err := newPrice.Validate(); err != nil {
		return err
	}
	if newPrice >= p.price {
		return errs.NewValueIsInvalidError("discounted price must be below current price")
	}

	original := p.price
	p.originalPrice = &original
	p.price = newPrice
	return nil
}

// Delist removes the product from the catalog. Listings are immutable, so
// this is the only state change after creation besides display data.
func (p *Product) Delist() {
	p.available = false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setBusiness(id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return ErrBusinessNameIsRequired
	}
	p.businessID = id
	p.businessName = name
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setUnit(unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}
	p.unit = unit
	return nil
}
