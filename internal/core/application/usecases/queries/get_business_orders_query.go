package queries

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrGetBusinessOrdersQueryIsNotConstructed = errors.New(
	"GetBusinessOrdersQuery must be created via NewGetBusinessOrdersQuery constructor",
)

// GetBusinessOrdersQuery retrieves all orders containing at least one item
// supplied by the given business, newest first. Feeds the business dashboard.
type GetBusinessOrdersQuery struct {
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBusinessOrdersQuery creates a validated business orders query.
func NewGetBusinessOrdersQuery(businessID kernel.UUID) (GetBusinessOrdersQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetBusinessOrdersQuery{}, err
	}

	return GetBusinessOrdersQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessOrdersQueryIsNotConstructed)
}

// BusinessID returns the business whose orders are listed.
func (q GetBusinessOrdersQuery) BusinessID() kernel.UUID {
	return q.businessID
}
