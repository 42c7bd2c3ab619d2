package queries

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/guard"
)

var ErrGetCourierEarningsQueryIsNotConstructed = errors.New(
	"GetCourierEarningsQuery must be created via NewGetCourierEarningsQuery constructor",
)

// GetCourierEarningsQuery computes a courier's earnings across completed
// deliveries.
type GetCourierEarningsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierEarningsQuery creates a validated earnings query.
func NewGetCourierEarningsQuery(courierID kernel.UUID) (GetCourierEarningsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierEarningsQuery{}, err
	}

	return GetCourierEarningsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierEarningsQueryIsNotConstructed)
}

// CourierID returns the courier whose earnings are computed.
func (q GetCourierEarningsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierEarningsQueryResponse summarizes a courier's completed work.
// TotalEarnings is integer cents.
type GetCourierEarningsQueryResponse struct {
	CompletedDeliveries int   `json:"completedDeliveries"`
	TotalEarnings       int64 `json:"totalEarnings"`
}
