package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping
// concurrent handler invocations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Command handlers
// begin a transaction, work through transaction-bound repositories, and
// commit or roll back explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Safe to defer after a
	// commit; rolling back a finished transaction is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}
