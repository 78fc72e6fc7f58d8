// Package ratingrepo provides persistence for ratings left between order
// parties.
package ratingrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/rating"
)

// RatingDTO represents the database structure of a rating. The composite
// unique index backs the one-rating-per-(order, author, target) rule.
type RatingDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	OrderID    int64  `gorm:"uniqueIndex:idx_ratings_order_from_to;not null"`
	FromUserID int64  `gorm:"uniqueIndex:idx_ratings_order_from_to;not null"`
	ToUserID   int64  `gorm:"uniqueIndex:idx_ratings_order_from_to;index;not null"`
	Score      int    `gorm:"not null"`
	Comment    string
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "ratings"
}

// fromDomain converts a rating entity to its database representation.
func fromDomain(entity *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:         entity.ID().Int64(),
		OrderID:    entity.OrderID().Int64(),
		FromUserID: entity.FromUserID().Int64(),
		ToUserID:   entity.ToUserID().Int64(),
		Score:      entity.Score(),
		Comment:    entity.Comment(),
	}
}

// toDomain converts a database row to a rating entity.
func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	fromUserID, err := kernel.NewID(dto.FromUserID)
	if err != nil {
		return nil, err
	}

	toUserID, err := kernel.NewID(dto.ToUserID)
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(id, orderID, fromUserID, toUserID, dto.Score, dto.Comment)
}
