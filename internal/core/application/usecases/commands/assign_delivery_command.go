package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a dispatch decision: the pressing picks
// a courier for an order.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      user.Actor
	orderID    kernel.ID
	deliveryID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a courier to an order.
func NewAssignDeliveryCommand(
	actor user.Actor,
	orderID, deliveryID kernel.ID,
) (AssignDeliveryCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		deliveryID.Validate(),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return AssignDeliveryCommand{
		actor:      actor,
		orderID:    orderID,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// Actor returns the authenticated caller dispatching the courier.
func (c AssignDeliveryCommand) Actor() user.Actor {
	return c.actor
}

// OrderID returns the identity of the order receiving a courier.
func (c AssignDeliveryCommand) OrderID() kernel.ID {
	return c.orderID
}

// DeliveryID returns the identity of the courier to assign.
func (c AssignDeliveryCommand) DeliveryID() kernel.ID {
	return c.deliveryID
}
