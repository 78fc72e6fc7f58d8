package kernel

import (
	"fmt"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly
// initialized TimeWindow. Time windows must be created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow represents the pickup and delivery moments of an order.
// It is an immutable value object that guarantees the delivery moment never
// precedes the pickup moment. The zero value is invalid and fails Validate;
// use the constructor to create instances.
//
// Example:
//
//	window, err := kernel.NewTimeWindow(pickup, pickup.Add(48*time.Hour))
//	if err != nil {
//	    // handle validation error
//	}
type TimeWindow struct { //nolint:recvcheck //using for validation
	pickupAt   time.Time
	deliveryAt time.Time
	guard      guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow from the given pickup and delivery moments.
// Both moments are required, and deliveryAt must not be earlier than pickupAt.
func NewTimeWindow(pickupAt, deliveryAt time.Time) (TimeWindow, error) {
	if pickupAt.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("pickupAt")
	}

	if deliveryAt.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("deliveryAt")
	}

	if deliveryAt.Before(pickupAt) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("deliveryAt",
			fmt.Errorf("delivery time %s is before pickup time %s",
				deliveryAt.Format(time.RFC3339), pickupAt.Format(time.RFC3339)))
	}

	return TimeWindow{
		pickupAt:   pickupAt,
		deliveryAt: deliveryAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// PickupAt returns the pickup moment.
func (w TimeWindow) PickupAt() time.Time {
	return w.pickupAt
}

// DeliveryAt returns the delivery moment.
func (w TimeWindow) DeliveryAt() time.Time {
	return w.deliveryAt
}

// IsEqual compares two time windows for equality.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.pickupAt.Equal(other.pickupAt) && w.deliveryAt.Equal(other.deliveryAt)
}

// Validate checks that the TimeWindow was created via NewTimeWindow.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}
