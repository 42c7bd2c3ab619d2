package inmem

import (
	"context"
	"sync"

	"harvesthub/internal/core/domain/model/cart"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

// CartRepository is a mutex-guarded in-memory ports.CartRepository. Carts are
// session state, so memory is the production backend.
type CartRepository struct {
	mu    sync.Mutex
	carts map[kernel.UUID]*cart.Cart
}

// NewCartRepository creates an empty in-memory cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[kernel.UUID]*cart.Cart)}
}

// GetByCustomer retrieves the consumer's cart.
func (r *CartRepository) GetByCustomer(_ context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.carts[customerID]
	if !exists {
		return nil, errs.NewObjectNotFoundError("cart", customerID.String())
	}

	return c, nil
}

// Save stores the cart, replacing any previous contents.
func (r *CartRepository) Save(_ context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[c.CustomerID()] = c
	return nil
}
