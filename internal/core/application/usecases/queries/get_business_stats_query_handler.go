package queries

import (
	"context"

	"harvesthub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetBusinessStatsQueryHandler aggregates a business's order book inside the
// database by unnesting the jsonb items snapshot.
type GetBusinessStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessStatsQueryHandler creates a handler for the stats query.
func NewGetBusinessStatsQueryHandler(db *gorm.DB) GetBusinessStatsQueryHandler {
	return GetBusinessStatsQueryHandler{db: db}
}

// Handle executes the stats aggregation.
func (h GetBusinessStatsQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessStatsQuery,
) (GetBusinessStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBusinessStatsQueryResponse{}, err
	}

	var response GetBusinessStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT o.id),
			COUNT(DISTINCT o.id) FILTER (WHERE o.status != ?),
			COUNT(DISTINCT o.id) FILTER (WHERE o.status = ?),
			COALESCE(SUM((item->>'price')::bigint * (item->>'quantity')::bigint), 0)
		FROM orders o
		CROSS JOIN LATERAL jsonb_array_elements(o.items) AS item
		WHERE item->>'businessId' = ?
	`, order.Delivered, order.Delivered, query.BusinessID().String()).Row()

	if err := row.Scan(
		&response.TotalOrders,
		&response.ActiveOrders,
		&response.CompletedOrders,
		&response.Revenue,
	); err != nil {
		return GetBusinessStatsQueryResponse{}, err
	}

	return response, nil
}
