package queries

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrGetConsumerOrdersQueryIsNotConstructed = errors.New(
	"GetConsumerOrdersQuery must be created via NewGetConsumerOrdersQuery constructor",
)

// GetConsumerOrdersQuery retrieves a consumer's order history, newest first.
// Feeds the order tracking screen.
type GetConsumerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConsumerOrdersQuery creates a validated consumer orders query.
func NewGetConsumerOrdersQuery(customerID kernel.UUID) (GetConsumerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetConsumerOrdersQuery{}, err
	}

	return GetConsumerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConsumerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetConsumerOrdersQueryIsNotConstructed)
}

// CustomerID returns the consumer whose orders are listed.
func (q GetConsumerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}
