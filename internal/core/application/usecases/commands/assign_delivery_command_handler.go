package commands

import (
	"context"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// AssignDeliveryCommandHandler handles courier assignment.
// Only business staff dispatch; the courier must be an existing user
// holding the Delivery role, and the order must not have one yet.
type AssignDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewAssignDeliveryCommandHandler creates a handler for courier assignment.
func NewAssignDeliveryCommandHandler(uowFactory OrderUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the courier assignment command.
// The conditional write is keyed on the order's current status and on the
// courier slot still being empty, so the assignment neither lands on an
// order a concurrent writer just moved nor overwrites a racing assignment.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanAssignDelivery(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	courier, err := uow.UserRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if courier.Role() != user.Delivery {
		return errs.NewObjectNotFoundError("deliveryID", cmd.DeliveryID().Int64())
	}

	priorStatus := aggregate.Status()
	priorDeliveryID := aggregate.DeliveryID()
	if err := aggregate.AssignDelivery(cmd.DeliveryID()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, aggregate, priorStatus, priorDeliveryID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
