package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler handles order lifecycle progression.
// Loads the aggregate, checks authorization and the transition table, and
// persists the move with a conditional write so racing writers lose cleanly.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the status change command and returns the updated
// aggregate.
//
// Error contract: errs.ObjectNotFoundError when the order doesn't exist,
// errs.AccessForbiddenError when the actor may not drive the lifecycle,
// errs.IllegalStatusTransitionError when the edge isn't in the transition
// table, and errs.ConcurrencyConflictError when a concurrent writer moved
// the order first (callers may re-read and retry).
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err := h.policy.CanChangeStatus(cmd.Actor(), aggregate); err != nil {
		return nil, err
	}

	priorStatus := aggregate.Status()
	if err := aggregate.TransitionTo(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err := orderRepo.Update(ctx, aggregate, priorStatus, aggregate.DeliveryID()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
