package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Identity is assigned by the store: aggregates go in without an ID and
// come back out with one.
type OrderRepository interface {
	// Add persists a new order aggregate and returns the stored aggregate
	// carrying the identifier assigned by the store.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the order still being in expectedPriorStatus with
	// expectedPriorDeliveryID still assigned (nil means still unassigned);
	// when a concurrent writer got there first, Update returns
	// errs.ConcurrencyConflictError and persists nothing.
	Update(ctx context.Context, aggregate *order.Order, expectedPriorStatus order.Status, expectedPriorDeliveryID *kernel.ID) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves the orders placed by a customer, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)

	// GetAllByDelivery retrieves the orders assigned to a courier, newest first.
	GetAllByDelivery(ctx context.Context, deliveryID kernel.ID) ([]*order.Order, error)
}
