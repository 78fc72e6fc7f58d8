package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order one step
// through its lifecycle.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor     user.Actor
	orderID   kernel.ID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The target status must be a member of the closed enumeration; whether the
// transition is legal from the order's current status is decided later,
// against the loaded aggregate.
func NewUpdateOrderStatusCommand(
	actor user.Actor,
	orderID kernel.ID,
	newStatus order.Status,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		newStatus.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		actor:     actor,
		orderID:   orderID,
		newStatus: newStatus,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Actor returns the authenticated caller requesting the change.
func (c UpdateOrderStatusCommand) Actor() user.Actor {
	return c.actor
}

// OrderID returns the identity of the order to move.
func (c UpdateOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}
