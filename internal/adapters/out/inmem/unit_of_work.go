package inmem

import (
	"context"

	"harvesthub/internal/core/ports"
)

// UnitOfWorkFactory hands out units of work over one shared in-memory order
// repository.
type UnitOfWorkFactory struct {
	orders *OrderRepository
}

// NewUnitOfWorkFactory creates a factory bound to the given repository.
func NewUnitOfWorkFactory(orders *OrderRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{orders: orders}
}

// Create produces a new UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{orders: f.orders}
}

// UnitOfWork implements ports.UnitOfWork without real transactions: each
// repository write is atomic on its own and guarded by the version check, so
// Begin, Commit, and Rollback are no-ops. Good enough for development and
// tests; multi-write atomicity needs the postgres adapter.
type UnitOfWork struct {
	orders *OrderRepository
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (uow *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op; writes apply immediately.
func (uow *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the shared order repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.orders
}
