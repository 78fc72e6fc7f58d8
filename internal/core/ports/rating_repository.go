package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for ratings.
type RatingRepository interface {
	// Add persists a new rating and returns the stored entity carrying the
	// identifier assigned by the store.
	Add(ctx context.Context, entity *rating.Rating) (*rating.Rating, error)

	// Exists reports whether the author already rated the target on the
	// given order. At most one rating per (order, author, target) is kept.
	Exists(ctx context.Context, orderID, fromUserID, toUserID kernel.ID) (bool, error)

	// GetAllByRatedUser retrieves the ratings received by a user, newest first.
	GetAllByRatedUser(ctx context.Context, toUserID kernel.ID) ([]*rating.Rating, error)
}
