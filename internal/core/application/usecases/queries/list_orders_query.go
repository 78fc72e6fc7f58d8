// Package queries contains read-only operations over the persistence store.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows directly and never touch domain aggregates.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the orders the actor is allowed to see:
// everything for business staff, own orders for a customer, assigned
// orders for a courier.
type ListOrdersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query scoped to the given actor.
func NewListOrdersQuery(actor user.Actor) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated caller the listing is scoped to.
func (q ListOrdersQuery) Actor() user.Actor {
	return q.actor
}

// ItemResponse is one garment line of an order read model.
type ItemResponse struct {
	Garment   string `json:"garment"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderResponse is the order read model shared by the listing and detail
// queries. Monetary amounts are minor units; timestamps are UTC.
type OrderResponse struct {
	ID              int64
	CustomerID      int64
	BusinessID      int64
	DeliveryID      *int64
	Status          string
	Items           []ItemResponse
	PickupAddress   string
	DeliveryAddress string
	PickupAt        time.Time
	DeliveryAt      time.Time
	Price           int64
	CreatedAt       time.Time
}
