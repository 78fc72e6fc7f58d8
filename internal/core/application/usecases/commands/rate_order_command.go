package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a party's request to rate another party of a
// finished order. The author is always the authenticated actor; clients
// cannot rate on someone else's behalf.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	orderID  kernel.ID
	toUserID kernel.ID
	score    int
	comment  string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate a party of an order.
// Score bounds and party membership are checked later against the loaded
// aggregate; the constructor only guards identities.
func NewRateOrderCommand(
	actor user.Actor,
	orderID, toUserID kernel.ID,
	score int,
	comment string,
) (RateOrderCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		toUserID.Validate(),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return RateOrderCommand{
		actor:    actor,
		orderID:  orderID,
		toUserID: toUserID,
		score:    score,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// Actor returns the authenticated caller writing the rating.
func (c RateOrderCommand) Actor() user.Actor {
	return c.actor
}

// OrderID returns the identity of the rated order.
func (c RateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// ToUserID returns the identity of the rated party.
func (c RateOrderCommand) ToUserID() kernel.ID {
	return c.toUserID
}

// Score returns the requested score.
func (c RateOrderCommand) Score() int {
	return c.score
}

// Comment returns the optional free-text comment.
func (c RateOrderCommand) Comment() string {
	return c.comment
}
