package ports

import (
	"context"

	"harvesthub/internal/core/domain/model/order"
)

// OrderEventPublisher notifies the outside world about order lifecycle
// changes. Publishing is best effort: handlers log failures but never fail
// the command, so the broker being down cannot block fulfillment.
type OrderEventPublisher interface {
	// PublishOrderStatusChanged emits an event for an order that just moved
	// to a new status.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
