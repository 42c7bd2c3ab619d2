package queries

import (
	"errors"

	"harvesthub/internal/pkg/guard"
)

var ErrGetAvailableJobsQueryIsNotConstructed = errors.New(
	"GetAvailableJobsQuery must be created via NewGetAvailableJobsQuery constructor",
)

// GetAvailableJobsQuery retrieves unclaimed delivery orders couriers can
// take: delivery method, Preparing status, no driver assigned yet.
type GetAvailableJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableJobsQuery creates a query for the courier job board.
func NewGetAvailableJobsQuery() GetAvailableJobsQuery {
	return GetAvailableJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableJobsQueryIsNotConstructed)
}
