package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetConsumerOrdersQueryHandler lists a consumer's orders, newest first.
type GetConsumerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetConsumerOrdersQueryHandler creates a handler for consumer order listings.
func NewGetConsumerOrdersQueryHandler(db *gorm.DB) GetConsumerOrdersQueryHandler {
	return GetConsumerOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetConsumerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetConsumerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
