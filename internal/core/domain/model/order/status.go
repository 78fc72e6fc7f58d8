package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> InProgress ──> Ready ──> Delivering ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Every edge is one-directional and single-step; there is no skipping and no
// retreating. Delivered and Cancelled are terminal. Status is a value object
// that validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	// The pressing has not accepted it yet.
	Pending

	// Accepted indicates the pressing has taken the order on.
	Accepted

	// PickedUp indicates the laundry has been collected from the customer.
	PickedUp

	// InProgress indicates the pressing is working on the laundry.
	InProgress

	// Ready indicates the laundry is cleaned and waiting for delivery.
	Ready

	// Delivering indicates the order is on its way back to the customer.
	Delivering

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was called off before pickup.
	// Reachable from Pending or Accepted only; final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Accepted:   "accepted",
		PickedUp:   "picked_up",
		InProgress: "in_progress",
		Ready:      "ready",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Accepted:   "accepted",
		PickedUp:   "picked_up",
		InProgress: "in_progress",
		Ready:      "ready",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the canonical directed graph of legal status moves.
// A status missing from the map, or mapped to an empty slice, has no outgoing
// edges and is terminal.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Accepted, Cancelled},
		Accepted:   {PickedUp, Cancelled},
		PickedUp:   {InProgress},
		InProgress: {Ready},
		Ready:      {Delivering},
		Delivering: {Delivered},
		Delivered:  {},
		Cancelled:  {},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the eight lifecycle states; Unknown (0) and any other
// values are invalid. This method is used to ensure Status values from
// external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("pending", "picked_up", ...).
// Returns "unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name into a Status.
// Returns an error for any string outside the closed enumeration.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status has no outgoing edges.
// Delivered and Cancelled are the terminal statuses.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether moving from s to the given status is a legal
// edge of the transition table. The function is pure and total over the enum
// domain: any pair involving an invalid status yields false.
func (s Status) CanTransitionTo(to Status) bool {
	for _, target := range getTransitions()[s] {
		if target == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the new status after moving along the (s, to) edge.
//
// Returns an IllegalStatusTransitionError naming both states when the pair is
// not an edge of the table. Invalid target statuses are rejected with a
// validation error before the table is consulted.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewIllegalStatusTransitionError(s.String(), to.String())
	}

	return to, nil
}
