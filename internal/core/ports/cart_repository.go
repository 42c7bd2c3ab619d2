package ports

import (
	"context"

	"harvesthub/internal/core/domain/model/cart"
	"harvesthub/internal/core/domain/model/kernel"
)

// CartRepository defines the storage contract for consumer carts. Carts are
// session state, so implementations may keep them in memory; the contract
// stays context-aware so a durable store can slot in without API changes.
type CartRepository interface {
	// GetByCustomer retrieves the consumer's cart, or reports not found if the
	// consumer has never added an item.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save stores the cart, replacing any previous contents.
	Save(ctx context.Context, c *cart.Cart) error
}
