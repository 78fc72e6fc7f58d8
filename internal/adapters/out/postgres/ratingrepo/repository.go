package ratingrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/rating"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Add saves a new rating and returns the entity carrying the identifier the
// store assigned. A concurrent rater that slipped past the handler's
// duplicate check hits the unique index; the violation surfaces as the same
// validation error the sequential path reports.
func (r *GormRatingRepository) Add(ctx context.Context, entity *rating.Rating) (*rating.Rating, error) {
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(entity)
	dto.ID = 0 // the store owns identity assignment

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewValueIsInvalidErrorWithCause("rating already exists", err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether the author already rated the target on the order.
func (r *GormRatingRepository) Exists(ctx context.Context, orderID, fromUserID, toUserID kernel.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&RatingDTO{}).
		Where("order_id = ? AND from_user_id = ? AND to_user_id = ?",
			orderID.Int64(), fromUserID.Int64(), toUserID.Int64()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllByRatedUser retrieves the ratings received by a user, newest first.
func (r *GormRatingRepository) GetAllByRatedUser(ctx context.Context, toUserID kernel.ID) ([]*rating.Rating, error) {
	if err := toUserID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RatingDTO
	if err := r.db.WithContext(ctx).
		Where("to_user_id = ?", toUserID.Int64()).
		Order("id DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		entity, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, entity)
	}

	return ratings, nil
}
