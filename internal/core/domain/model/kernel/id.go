package kernel

import (
	"strconv"

	"laundry/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not properly initialized
// through NewID. This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object that represents an entity identity. Identities are
// positive integers assigned by the persistence store (serial columns), so a
// freshly constructed aggregate carries a zero ID until it is persisted.
//
// The zero value of ID is invalid and must be constructed via NewID.
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "42"
type ID struct {
	value int64
}

// NewID creates an ID from a positive integer value.
// Returns an error if the value is not greater than zero.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			errs.NewValueIsOutOfRangeError("id", value, 1, int64(^uint64(0)>>1)))
	}
	return ID{value: value}, nil
}

// Int64 returns the numeric value of the identity.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the identity.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two identities for equality.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate checks that the ID was properly constructed.
// Returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
