package queries

import (
	"context"

	"harvesthub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// courierPayoutCents is the flat per-delivery payout, $4.50 in cents. On top
// of it the courier earns 10% of the order total.
const courierPayoutCents = 450

// GetCourierEarningsQueryHandler computes courier earnings in the database:
// each completed delivery pays a flat amount plus ten percent of the order
// total, all in integer cents.
type GetCourierEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierEarningsQueryHandler creates a handler for the earnings query.
func NewGetCourierEarningsQueryHandler(db *gorm.DB) GetCourierEarningsQueryHandler {
	return GetCourierEarningsQueryHandler{db: db}
}

// Handle executes the earnings aggregation.
func (h GetCourierEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierEarningsQuery,
) (GetCourierEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierEarningsQueryResponse{}, err
	}

	var response GetCourierEarningsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(? + total / 10), 0)
		FROM orders
		WHERE driver_id = ?
		  AND status = ?
	`, courierPayoutCents, query.CourierID().String(), order.Delivered).Row()

	if err := row.Scan(&response.CompletedDeliveries, &response.TotalEarnings); err != nil {
		return GetCourierEarningsQueryResponse{}, err
	}

	return response, nil
}
