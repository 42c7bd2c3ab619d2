// Package inmem provides in-memory adapter implementations. The cart store
// is the production cart backend (carts are session state); the order
// repository and unit of work mirror the postgres semantics, version check
// included, for development and tests without a database.
package inmem

import (
	"context"
	"sync"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/pkg/errs"
)

type orderRecord struct {
	aggregate *order.Order
	version   int64
}

// OrderRepository is a mutex-guarded in-memory ports.OrderRepository. Updates
// are compare-and-set on a version counter, matching the postgres adapter, so
// the first-writer-wins claim behaves identically in both backends.
type OrderRepository struct {
	mu     sync.Mutex
	orders map[kernel.UUID]orderRecord
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[kernel.UUID]orderRecord)}
}

// Add stores a new order, starting its version at 1.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order already exists")
	}

	snapshot, err := snapshotOrder(aggregate, 1)
	if err != nil {
		return err
	}

	r.orders[aggregate.ID()] = orderRecord{aggregate: snapshot, version: 1}
	return nil
}

// Update stores changes if the aggregate's loaded version still matches.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.orders[aggregate.ID()]
	if !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if record.version != aggregate.Version() {
		return errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	newVersion := record.version + 1
	snapshot, err := snapshotOrder(aggregate, newVersion)
	if err != nil {
		return err
	}

	r.orders[aggregate.ID()] = orderRecord{aggregate: snapshot, version: newVersion}
	return nil
}

// Get retrieves a copy of an order by ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return snapshotOrder(record.aggregate, record.version)
}

// GetAllActive retrieves copies of all orders not yet delivered.
func (r *OrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := make([]*order.Order, 0, len(r.orders))
	for _, record := range r.orders {
		if record.aggregate.Status().IsTerminal() {
			continue
		}

		snapshot, err := snapshotOrder(record.aggregate, record.version)
		if err != nil {
			return nil, err
		}
		orders = append(orders, snapshot)
	}

	return orders, nil
}

// snapshotOrder deep-copies an aggregate through its restore constructor so
// callers can never mutate the stored state in place.
func snapshotOrder(aggregate *order.Order, version int64) (*order.Order, error) {
	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.CustomerID(),
		aggregate.CustomerName(),
		aggregate.Items(),
		aggregate.FulfillmentMethod(),
		aggregate.DeliveryAddress(),
		aggregate.CreatedAt(),
		aggregate.Status(),
		aggregate.DriverID(),
		aggregate.DriverProgress(),
		aggregate.ProgressedAt(),
		version,
	)
}
