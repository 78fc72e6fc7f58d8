package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a laundry pickup/delivery order. It is the aggregate root
// that manages the order lifecycle from placement through pressing to delivery.
//
// Order follows these invariants:
//   - Customer and business references are set at creation and never change
//   - Items are non-empty and never change after creation
//   - Price equals the sum of item quantity * unit price; any client-supplied
//     price is ignored
//   - Status only moves along edges of the transition table in status.go
//   - The delivery reference is nil until a courier is assigned and never
//     changes afterwards
//   - Can only be created through NewOrder or RestoreOrder
//
// A freshly placed order has no identity yet; the persistence store assigns
// one, and repositories return the stored aggregate via RestoreOrder.
type Order struct {
	// id is the store-assigned identity (zero until persisted)
	id kernel.ID

	// customerID references the customer who placed the order
	customerID kernel.ID

	// businessID references the pressing that processes the order
	businessID kernel.ID

	// deliveryID references the assigned courier (nil if unassigned)
	deliveryID *kernel.ID

	// status is the current state in the order lifecycle
	status Status

	// items are the garment lines the price derives from
	items []Item

	// pickupAddress is where the courier collects the laundry
	pickupAddress string

	// deliveryAddress is where the cleaned laundry is returned
	deliveryAddress string

	// window holds the pickup and delivery moments
	window kernel.TimeWindow

	// price is the total in minor currency units, derived from items
	price kernel.Money

	// createdAt is set at placement and immutable (UTC)
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new order placed by a customer at a pressing.
// This is the only way to create a not-yet-persisted Order, ensuring all
// business invariants hold from the start.
//
// The order starts in Pending status with no courier assigned. The price is
// computed from the items; callers cannot supply one. createdAt is normalized
// to UTC.
//
// Returns a validation error if any reference, item, address, or the time
// window is invalid, or if items is empty.
func NewOrder(
	customerID, businessID kernel.ID,
	items []Item,
	pickupAddress, deliveryAddress string,
	window kernel.TimeWindow,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	order.createdAt = now.UTC()

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setBusinessID(businessID),
		order.setItems(items),
		order.setAddresses(pickupAddress, deliveryAddress),
		order.setWindow(window),
	); err != nil {
		return nil, err
	}

	order.price = computePrice(order.items)
	return order, nil
}

// RestoreOrder reconstructs an order aggregate from persisted state.
// Used by repositories; it validates references, the status, and the items,
// but trusts the stored price and creation time.
func RestoreOrder(
	id, customerID, businessID kernel.ID,
	deliveryID *kernel.ID,
	status Status,
	items []Item,
	pickupAddress, deliveryAddress string,
	window kernel.TimeWindow,
	price kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
		createdAt:     createdAt,
	}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		price.Validate(),
		order.setCustomerID(customerID),
		order.setBusinessID(businessID),
		order.setItems(items),
		order.setAddresses(pickupAddress, deliveryAddress),
		order.setWindow(window),
	); err != nil {
		return nil, err
	}

	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return nil, err
		}
		assigned := *deliveryID
		order.deliveryID = &assigned
	}

	order.id = id
	order.status = status
	order.price = price
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct, and should be called when aggregates cross a trust boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identities.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identity. Zero until the order is persisted.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// BusinessID returns the pressing processing the order.
func (o *Order) BusinessID() kernel.ID {
	return o.businessID
}

// DeliveryID returns the assigned courier's identity.
// Returns nil if no courier is assigned.
func (o *Order) DeliveryID() *kernel.ID {
	return o.deliveryID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's garment lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// PickupAddress returns where the courier collects the laundry.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns where the cleaned laundry is returned.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Window returns the pickup/delivery time window.
func (o *Order) Window() kernel.TimeWindow {
	return o.window
}

// Price returns the order total in minor currency units.
func (o *Order) Price() kernel.Money {
	return o.price
}

// CreatedAt returns the placement time (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order along the (current, newStatus) edge of the
// transition table.
//
// Returns an IllegalStatusTransitionError naming both states when the pair is
// not an edge. The aggregate is unchanged on failure.
func (o *Order) TransitionTo(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// AssignDelivery assigns a courier to the order.
//
// Business rules:
//   - The courier identity must be valid
//   - The order must not already have a courier (no reassignment flow)
//   - Terminal orders cannot receive a courier
func (o *Order) AssignDelivery(deliveryID kernel.ID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if o.deliveryID != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryId",
			fmt.Errorf("order already assigned to courier %s", o.deliveryID.String()))
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot receive a courier", o.status.String()))
	}

	o.deliveryID = &deliveryID
	return nil
}

// IsParty reports whether the given user is one of the order's participants:
// its customer, its pressing, or its assigned courier.
func (o *Order) IsParty(userID kernel.ID) bool {
	if o.customerID.IsEqual(userID) || o.businessID.IsEqual(userID) {
		return true
	}
	return o.deliveryID != nil && o.deliveryID.IsEqual(userID)
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setBusinessID(businessID kernel.ID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}
	o.businessID = businessID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	o.pickupAddress = pickupAddress
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	o.window = window
	return nil
}

// computePrice derives the order total from its items.
func computePrice(items []Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}
