package queries

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrGetBusinessStatsQueryIsNotConstructed = errors.New(
	"GetBusinessStatsQuery must be created via NewGetBusinessStatsQuery constructor",
)

// GetBusinessStatsQuery computes the headline numbers on the business
// dashboard: order counts and the revenue earned from the business's own
// line items.
type GetBusinessStatsQuery struct {
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBusinessStatsQuery creates a validated business stats query.
func NewGetBusinessStatsQuery(businessID kernel.UUID) (GetBusinessStatsQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetBusinessStatsQuery{}, err
	}

	return GetBusinessStatsQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessStatsQueryIsNotConstructed)
}

// BusinessID returns the business the stats are computed for.
func (q GetBusinessStatsQuery) BusinessID() kernel.UUID {
	return q.businessID
}

// GetBusinessStatsQueryResponse summarizes a business's order book. Revenue
// counts only the business's own items at their snapshot prices, in cents;
// fees and other businesses' items in shared orders are excluded.
type GetBusinessStatsQueryResponse struct {
	TotalOrders     int   `json:"totalOrders"`
	ActiveOrders    int   `json:"activeOrders"`
	CompletedOrders int   `json:"completedOrders"`
	Revenue         int64 `json:"revenue"`
}
