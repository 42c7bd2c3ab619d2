// Package commands contains the write side of the application: one command
// and handler per state-changing operation of the fulfillment lifecycle.
// All handlers follow the same pattern: validate the command, open a unit of
// work, load and mutate the aggregate, commit, then publish the change.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/ports"
)

// ErrActorNotAuthorized is returned when the acting user has no right to run
// the command against the targeted order: a business that supplied none of
// the items, or a consumer touching someone else's order.
var ErrActorNotAuthorized = errors.New("actor is not allowed to perform this operation on the order")

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a new unit of work per handled command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// publishStatusChange emits a status-changed event after a successful commit.
// Publishing is best effort: a failure is logged and swallowed so a broker
// outage never fails the command.
func publishStatusChange(ctx context.Context, publisher ports.OrderEventPublisher, aggregate *order.Order) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishOrderStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order status change",
			"orderId", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err)
	}
}
