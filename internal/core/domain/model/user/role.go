package user

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role represents the closed set of actor roles in the platform.
// Every authenticated user carries exactly one role, assigned at registration
// and immutable afterwards.
//
// Roles:
//   - Customer places orders and reads their own orders.
//   - Delivery couriers read the orders assigned to them.
//   - Business is the pressing operator and acts as the platform
//     administrator: it reads every order and drives status changes.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Customer places laundry orders.
	Customer

	// Delivery picks up and delivers orders assigned to it.
	Delivery

	// Business operates the pressing and administers the order fleet.
	Business
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "unknown",
		Customer: "customer",
		Delivery: "delivery",
		Business: "business",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "customer",
		Delivery: "delivery",
		Business: "business",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Delivery, Business. Unknown (0) and any other
// values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("customer", "delivery", "business").
// Returns "unknown" for invalid role values. Implements fmt.Stringer and is
// safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a wire name into a Role.
// Returns an error for any string outside the closed enumeration.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
