package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/rating"
)

type createOrderRequest struct {
	BusinessID      int64                    `json:"business_id" validate:"required,gt=0"`
	Items           []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PickupAddress   string                   `json:"pickup_address" validate:"required"`
	DeliveryAddress string                   `json:"delivery_address" validate:"required"`
	PickupAt        time.Time                `json:"pickup_at" validate:"required"`
	DeliveryAt      time.Time                `json:"delivery_at" validate:"required"`
}

type createOrderItemRequest struct {
	Garment   string `json:"garment" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignDeliveryRequest struct {
	DeliveryID int64 `json:"delivery_id" validate:"required,gt=0"`
}

type rateOrderRequest struct {
	OrderID  int64  `json:"order_id" validate:"required,gt=0"`
	ToUserID int64  `json:"to_user_id" validate:"required,gt=0"`
	Score    int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"max=500"`
}

type orderItemResponse struct {
	Garment   string `json:"garment"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type orderResponse struct {
	ID              int64               `json:"id"`
	CustomerID      int64               `json:"customer_id"`
	BusinessID      int64               `json:"business_id"`
	DeliveryID      *int64              `json:"delivery_id,omitempty"`
	Status          string              `json:"status"`
	Items           []orderItemResponse `json:"items"`
	PickupAddress   string              `json:"pickup_address"`
	DeliveryAddress string              `json:"delivery_address"`
	PickupAt        time.Time           `json:"pickup_at"`
	DeliveryAt      time.Time           `json:"delivery_at"`
	Price           int64               `json:"price"`
	CreatedAt       time.Time           `json:"created_at"`
}

type ratingResponse struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"order_id"`
	FromUserID int64  `json:"from_user_id"`
	ToUserID   int64  `json:"to_user_id"`
	Score      int    `json:"score"`
	Comment    string `json:"comment,omitempty"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	Score    int    `json:"score"`
}

type dashboardSummaryResponse struct {
	PendingCount   int   `json:"pending_count"`
	ActiveCount    int   `json:"active_count"`
	CompletedCount int   `json:"completed_count"`
	TodayRevenue   int64 `json:"today_revenue"`
}

func orderResponseFromAggregate(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemResponse{
			Garment:   item.Garment().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Int64(),
		})
	}

	var deliveryID *int64
	if id := aggregate.DeliveryID(); id != nil {
		value := id.Int64()
		deliveryID = &value
	}

	return orderResponse{
		ID:              aggregate.ID().Int64(),
		CustomerID:      aggregate.CustomerID().Int64(),
		BusinessID:      aggregate.BusinessID().Int64(),
		DeliveryID:      deliveryID,
		Status:          aggregate.Status().String(),
		Items:           items,
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupAt:        aggregate.Window().PickupAt(),
		DeliveryAt:      aggregate.Window().DeliveryAt(),
		Price:           aggregate.Price().Int64(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func orderResponseFromReadModel(model queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, orderItemResponse{
			Garment:   item.Garment,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return orderResponse{
		ID:              model.ID,
		CustomerID:      model.CustomerID,
		BusinessID:      model.BusinessID,
		DeliveryID:      model.DeliveryID,
		Status:          model.Status,
		Items:           items,
		PickupAddress:   model.PickupAddress,
		DeliveryAddress: model.DeliveryAddress,
		PickupAt:        model.PickupAt,
		DeliveryAt:      model.DeliveryAt,
		Price:           model.Price,
		CreatedAt:       model.CreatedAt,
	}
}

func ratingResponseFromEntity(entity *rating.Rating) ratingResponse {
	return ratingResponse{
		ID:         entity.ID().Int64(),
		OrderID:    entity.OrderID().Int64(),
		FromUserID: entity.FromUserID().Int64(),
		ToUserID:   entity.ToUserID().Int64(),
		Score:      entity.Score(),
		Comment:    entity.Comment(),
	}
}

func (r createOrderRequest) toItems() ([]order.Item, error) {
	items := make([]order.Item, 0, len(r.Items))
	for _, line := range r.Items {
		garment, err := order.GarmentKindFromString(line.Garment)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(garment, line.Quantity, kernel.Money(line.UnitPrice))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
