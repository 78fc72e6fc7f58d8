package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Resolves the target pressing, builds the aggregate in Pending status with
// its derived price, and persists it transactionally.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the order placement command and returns the stored
// aggregate carrying its store-assigned identifier.
//
// The target must be an existing user holding the Business role; anything
// else resolves to errs.ObjectNotFoundError so callers cannot probe the
// user table through order placement.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanCreateOrder(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	business, err := uow.UserRepository().Get(ctx, cmd.BusinessID())
	if err != nil {
		return nil, err
	}
	if business.Role() != user.Business {
		return nil, errs.NewObjectNotFoundError("businessID", cmd.BusinessID().Int64())
	}

	aggregate, err := order.NewOrder(
		cmd.Actor().ID(), cmd.BusinessID(), cmd.Items(),
		cmd.PickupAddress(), cmd.DeliveryAddress(),
		cmd.Window(), time.Now())
	if err != nil {
		return nil, err
	}

	stored, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
