package queries

import (
	"context"

	"harvesthub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAvailableJobsQueryHandler lists the courier job board: delivery orders
// being prepared that nobody has claimed. The listing is a snapshot; the
// claim itself is still decided first-writer-wins at write time.
type GetAvailableJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableJobsQueryHandler creates a handler for the job board query.
func NewGetAvailableJobsQueryHandler(db *gorm.DB) GetAvailableJobsQueryHandler {
	return GetAvailableJobsQueryHandler{db: db}
}

// Handle executes the query, oldest orders first so long-waiting deliveries
// surface at the top of the board.
func (h GetAvailableJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableJobsQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE method = ?
		  AND status = ?
		  AND driver_id IS NULL
		ORDER BY created_at
	`, order.Delivery, order.Preparing).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
