// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identifier is a serial assigned by the store; garment lines live in a
// jsonb column since they are only ever read back as a whole.
type OrderDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64     `gorm:"index;not null"`
	BusinessID      int64     `gorm:"index;not null"`
	DeliveryID      *int64    `gorm:"index"`
	Status          string    `gorm:"type:varchar(16);index;not null"`
	Items           []byte    `gorm:"type:jsonb;not null"`
	PickupAddress   string    `gorm:"not null"`
	DeliveryAddress string    `gorm:"not null"`
	PickupAt        time.Time `gorm:"not null"`
	DeliveryAt      time.Time `gorm:"not null"`
	Price           int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"index;not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is one garment line inside the jsonb items column. Field names
// match the read-model wire format.
type itemDTO struct {
	Garment   string `json:"garment"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			Garment:   item.Garment().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Int64(),
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	var deliveryID *int64
	if id := aggregate.DeliveryID(); id != nil {
		value := id.Int64()
		deliveryID = &value
	}

	return OrderDTO{
		ID:              aggregate.ID().Int64(),
		CustomerID:      aggregate.CustomerID().Int64(),
		BusinessID:      aggregate.BusinessID().Int64(),
		DeliveryID:      deliveryID,
		Status:          aggregate.Status().String(),
		Items:           raw,
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupAt:        aggregate.Window().PickupAt(),
		DeliveryAt:      aggregate.Window().DeliveryAt(),
		Price:           aggregate.Price().Int64(),
		CreatedAt:       aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	businessID, err := kernel.NewID(dto.BusinessID)
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.ID
	if dto.DeliveryID != nil {
		assigned, idErr := kernel.NewID(*dto.DeliveryID)
		if idErr != nil {
			return nil, idErr
		}
		deliveryID = &assigned
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		garment, kindErr := order.GarmentKindFromString(raw.Garment)
		if kindErr != nil {
			return nil, kindErr
		}

		item, itemErr := order.NewItem(garment, raw.Quantity, kernel.Money(raw.UnitPrice))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	window, err := kernel.NewTimeWindow(dto.PickupAt, dto.DeliveryAt)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, businessID, deliveryID,
		status, items,
		dto.PickupAddress, dto.DeliveryAddress,
		window, kernel.Money(dto.Price), dto.CreatedAt)
}
