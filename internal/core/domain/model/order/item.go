package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a garment kind, how many of it, and the unit
// price in minor currency units. Items are value objects embedded in their
// order; they have no identity and no lifecycle of their own.
//
// The order price is always derived from its items
// (sum of quantity * unit price); items never change after order creation.
type Item struct { //nolint:recvcheck //using for validation
	garment   GarmentKind
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order item with validation.
// The garment kind must belong to the closed enumeration, quantity must be at
// least one, and the unit price must not be negative.
func NewItem(garment GarmentKind, quantity int, unitPrice kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setGarment(garment),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Garment returns the garment kind.
func (i Item) Garment() GarmentKind {
	return i.garment
}

// Quantity returns how many garments of this kind the line covers.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single garment in minor currency units.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Total returns quantity times unit price for this line.
func (i Item) Total() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

func (i *Item) setGarment(garment GarmentKind) error {
	if err := garment.Validate(); err != nil {
		return err
	}
	i.garment = garment
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
