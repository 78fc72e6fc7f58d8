package queries

import (
	"context"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order row.
//
// An order the actor may not see answers exactly like one that doesn't
// exist, so callers can't probe which order identifiers are taken.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the read. Returns errs.ObjectNotFoundError both for a
// missing order and for one outside the actor's visibility.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Int64()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().Int64())
	}

	resp, err := scanOrderResponse(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if !h.visible(query.Actor(), resp) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().Int64())
	}

	return resp, nil
}

func (h GetOrderQueryHandler) visible(actor user.Actor, resp OrderResponse) bool {
	//nolint:exhaustive
	switch actor.Role() {
	case user.Business:
		return true
	case user.Customer:
		return resp.CustomerID == actor.ID().Int64()
	case user.Delivery:
		return resp.DeliveryID != nil && *resp.DeliveryID == actor.ID().Int64()
	default:
		return false
	}
}
