package queries

import (
	"context"

	"harvesthub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler lists a courier's in-transit orders. Finished
// deliveries drop off the dashboard; the earnings query accounts for them.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier order listings.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE driver_id = ?
		  AND status != ?
		ORDER BY created_at DESC
	`, query.CourierID().String(), order.Delivered).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
