package queries

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves the orders a courier has claimed, both
// in-transit and completed. Feeds the courier dashboard.
type GetCourierOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a validated courier orders query.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are listed.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}
