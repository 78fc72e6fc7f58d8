package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order the actor is allowed to see.
type GetOrderQuery struct {
	actor   user.Actor
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order on behalf of the actor.
func NewGetOrderQuery(actor user.Actor, orderID kernel.ID) (GetOrderQuery, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetOrderQuery) Actor() user.Actor {
	return q.actor
}

// OrderID returns the identity of the requested order.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
