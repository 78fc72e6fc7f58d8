package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrListRatingsQueryIsNotConstructed = errors.New(
	"ListRatingsQuery must be created via NewListRatingsQuery constructor",
)

// ListRatingsQuery retrieves the ratings a user has received.
type ListRatingsQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewListRatingsQuery creates a query for the ratings received by a user.
func NewListRatingsQuery(userID kernel.ID) (ListRatingsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListRatingsQuery{}, err
	}

	return ListRatingsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRatingsQuery) Validate() error {
	return q.guard.Validate(ErrListRatingsQueryIsNotConstructed)
}

// UserID returns the identity of the rated user.
func (q ListRatingsQuery) UserID() kernel.ID {
	return q.userID
}

// RatingResponse is the rating read model.
type RatingResponse struct {
	ID         int64
	OrderID    int64
	FromUserID int64
	ToUserID   int64
	Score      int
	Comment    string
}
