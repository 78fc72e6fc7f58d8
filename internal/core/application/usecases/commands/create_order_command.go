package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place a new laundry
// order with a pressing. It carries the authenticated actor, the chosen
// pressing, the garment lines and the pickup/delivery arrangement.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, businessID, items,
//	    "12 Rue des Fleurs", "34 Avenue Hassan II", window)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor           user.Actor
	businessID      kernel.ID
	items           []order.Item
	pickupAddress   string
	deliveryAddress string
	window          kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the actor, the target pressing identity, the item lines and the
// pickup/delivery arrangement. Returns an error if any validation fails.
func NewCreateOrderCommand(
	actor user.Actor,
	businessID kernel.ID,
	items []order.Item,
	pickupAddress, deliveryAddress string,
	window kernel.TimeWindow,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		businessID.Validate(),
		window.Validate(),
		cmd.setItems(items),
		cmd.setAddresses(pickupAddress, deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.businessID = businessID
	cmd.window = window
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the authenticated caller placing the order.
func (c CreateOrderCommand) Actor() user.Actor {
	return c.actor
}

// BusinessID returns the identity of the pressing the order is placed with.
func (c CreateOrderCommand) BusinessID() kernel.ID {
	return c.businessID
}

// Items returns the garment lines of the order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// PickupAddress returns where the laundry is collected.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns where the laundry is returned.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Window returns the requested pickup/delivery time window.
func (c CreateOrderCommand) Window() kernel.TimeWindow {
	return c.window
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.pickupAddress = pickupAddress
	c.deliveryAddress = deliveryAddress
	return nil
}
