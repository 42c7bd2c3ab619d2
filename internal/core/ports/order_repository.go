// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the event publisher.
package ports

import (
	"context"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency: the write succeeds only if the stored version still matches
	// the version the aggregate was loaded with. A lost race is reported as a
	// version conflict so command handlers can translate it (the courier claim
	// turns it into an already-claimed error).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that have not reached the terminal
	// Delivered status. The simulation tick advances exactly this set.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
