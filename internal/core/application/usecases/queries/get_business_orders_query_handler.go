package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBusinessOrdersQueryHandler lists orders for the business dashboard.
// Membership is decided inside the database with a jsonb containment check
// against the items snapshot, so multi-business orders appear on every
// involved business's dashboard.
type GetBusinessOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessOrdersQueryHandler creates a handler for business order listings.
func NewGetBusinessOrdersQueryHandler(db *gorm.DB) GetBusinessOrdersQueryHandler {
	return GetBusinessOrdersQueryHandler{db: db}
}

// Handle executes the query, newest orders first.
func (h GetBusinessOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE items @> jsonb_build_array(jsonb_build_object('businessId', ?::text))
		ORDER BY created_at DESC
	`, query.BusinessID().String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
