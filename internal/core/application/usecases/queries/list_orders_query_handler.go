package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"laundry/internal/core/domain/model/user"

	"gorm.io/gorm"
)

const orderColumns = `
	id,
	customer_id,
	business_id,
	delivery_id,
	status,
	items,
	pickup_address,
	delivery_address,
	pickup_at,
	delivery_at,
	price,
	created_at
`

// ListOrdersQueryHandler reads order rows scoped to the actor's role.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first. An actor with nothing
// to see gets an empty slice, not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)

	var rows *sql.Rows
	var err error

	//nolint:exhaustive
	switch query.Actor().Role() {
	case user.Business:
		rows, err = tx.Raw(`
			SELECT `+orderColumns+`
			FROM orders
			ORDER BY created_at DESC
		`).Rows()
	case user.Customer:
		rows, err = tx.Raw(`
			SELECT `+orderColumns+`
			FROM orders
			WHERE customer_id = ?
			ORDER BY created_at DESC
		`, query.Actor().ID().Int64()).Rows()
	default:
		rows, err = tx.Raw(`
			SELECT `+orderColumns+`
			FROM orders
			WHERE delivery_id = ?
			ORDER BY created_at DESC
		`, query.Actor().ID().Int64()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var deliveryID sql.NullInt64
	var items []byte

	err := rows.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.BusinessID,
		&deliveryID,
		&resp.Status,
		&items,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.PickupAt,
		&resp.DeliveryAt,
		&resp.Price,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if deliveryID.Valid {
		resp.DeliveryID = &deliveryID.Int64
	}

	if err = json.Unmarshal(items, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
