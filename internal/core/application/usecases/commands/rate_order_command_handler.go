package commands

import (
	"context"

	"laundry/internal/core/domain/model/rating"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// RateOrderCommandHandler handles rating creation.
//
// Business rules:
//   - the order must exist and be in a terminal status
//   - the author must be a party to the order, and so must the target
//   - the author is always the authenticated actor
//   - at most one rating per (order, author, target)
type RateOrderCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     services.AccessPolicy
}

// NewRateOrderCommandHandler creates a handler for rating creation.
func NewRateOrderCommandHandler(uowFactory RatingUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the rating command and returns the stored rating
// carrying its store-assigned identifier.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (*rating.Rating, error) {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err := h.policy.CanRateOrder(cmd.Actor(), aggregate); err != nil {
		return nil, err
	}

	if !aggregate.Status().IsTerminal() {
		return nil, errs.NewValueIsInvalidError("order status")
	}

	if !aggregate.IsParty(cmd.ToUserID()) {
		return nil, errs.NewValueIsInvalidError("toUserID")
	}

	entity, err := rating.NewRating(
		cmd.OrderID(), cmd.Actor().ID(), cmd.ToUserID(),
		cmd.Score(), cmd.Comment())
	if err != nil {
		return nil, err
	}

	ratingRepo := uow.RatingRepository()
	exists, err := ratingRepo.Exists(ctx, cmd.OrderID(), cmd.Actor().ID(), cmd.ToUserID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewValueIsInvalidError("rating already exists")
	}

	stored, err := ratingRepo.Add(ctx, entity)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
