package kernel

import (
	"fmt"

	"harvesthub/internal/pkg/errs"
)

// Money is a monetary amount in integer cents. Prices, totals, fees, and
// earnings are all carried as cents so that order totals never accumulate
// floating point drift.
//
// The zero value is a valid $0.00 amount. Negative amounts are invalid.
type Money int64

// NewMoney creates a Money amount from cents, rejecting negative values.
func NewMoney(cents int64) (Money, error) {
	m := Money(cents)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// Validate returns an error for negative amounts.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", int64(m)))
	}
	return nil
}

// Cents returns the raw amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulQty returns the amount multiplied by an item quantity.
func (m Money) MulQty(qty int) Money {
	return m * Money(qty)
}

// String formats the amount as dollars, e.g. "$13.97".
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
