package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Money represents a monetary amount in minor currency units (cents).
// Amounts are always non-negative in this domain; prices are derived from
// order items and never go below zero.
type Money int64

// Validate checks that the amount is not negative.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d is negative", int64(m)))
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(quantity int) Money {
	return m * Money(quantity)
}

// Int64 returns the amount in minor currency units.
func (m Money) Int64() int64 {
	return int64(m)
}
