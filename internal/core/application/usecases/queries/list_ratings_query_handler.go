package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRatingsQueryHandler reads the ratings received by a user.
type ListRatingsQueryHandler struct {
	db *gorm.DB
}

// NewListRatingsQueryHandler creates a handler for rating listings.
func NewListRatingsQueryHandler(db *gorm.DB) ListRatingsQueryHandler {
	return ListRatingsQueryHandler{db: db}
}

// Handle executes the listing, newest ratings first.
func (h ListRatingsQueryHandler) Handle(ctx context.Context, query ListRatingsQuery) ([]RatingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			from_user_id,
			to_user_id,
			score,
			comment
		FROM ratings
		WHERE to_user_id = ?
		ORDER BY id DESC
	`, query.UserID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]RatingResponse, 0)
	for rows.Next() {
		var resp RatingResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.OrderID,
			&resp.FromUserID,
			&resp.ToUserID,
			&resp.Score,
			&resp.Comment,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}
