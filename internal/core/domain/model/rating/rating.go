// Package rating contains the Rating entity: the score one order participant
// leaves for another after the order completes. Ratings are immutable once
// created.
package rating

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrRatingIsNotConstructed is returned when a Rating instance was not
	// created through the NewRating or RestoreRating factory methods.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating or RestoreRating constructor")
)

const (
	// ScoreMin is the lowest allowed rating score.
	ScoreMin = 1

	// ScoreMax is the highest allowed rating score.
	ScoreMax = 5
)

// Rating is the score one participant of an order gives another participant
// of the same order. The rater is always the authenticated actor; client
// payloads cannot spoof it.
//
// Invariants:
//   - Order, rater, and ratee references are valid identities
//   - The rater and the ratee differ
//   - Score is within [ScoreMin, ScoreMax]
//   - Immutable after creation
type Rating struct {
	// id is the store-assigned identity (zero until persisted)
	id kernel.ID

	// orderID references the rated order
	orderID kernel.ID

	// fromUserID is the rater; always the authenticated actor
	fromUserID kernel.ID

	// toUserID is the rated participant
	toUserID kernel.ID

	// score is the rating value within [ScoreMin, ScoreMax]
	score int

	// comment is optional free text
	comment string

	// isConstructed ensures the rating was created via a constructor
	isConstructed bool
}

// NewRating creates a not-yet-persisted rating with validation.
func NewRating(orderID, fromUserID, toUserID kernel.ID, score int, comment string) (*Rating, error) {
	rating := &Rating{
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		rating.setOrderID(orderID),
		rating.setParticipants(fromUserID, toUserID),
		rating.setScore(score),
	); err != nil {
		return nil, err
	}

	return rating, nil
}

// RestoreRating reconstructs a rating from persisted state.
func RestoreRating(id, orderID, fromUserID, toUserID kernel.ID, score int, comment string) (*Rating, error) {
	rating, err := NewRating(orderID, fromUserID, toUserID, score, comment)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}

	rating.id = id
	return rating, nil
}

// Validate ensures the Rating instance was properly constructed.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}

	return nil
}

// ID returns the rating's identity. Zero until persisted.
func (r *Rating) ID() kernel.ID {
	return r.id
}

// OrderID returns the rated order.
func (r *Rating) OrderID() kernel.ID {
	return r.orderID
}

// FromUserID returns the rater.
func (r *Rating) FromUserID() kernel.ID {
	return r.fromUserID
}

// ToUserID returns the rated participant.
func (r *Rating) ToUserID() kernel.ID {
	return r.toUserID
}

// Score returns the rating value.
func (r *Rating) Score() int {
	return r.score
}

// Comment returns the optional free-text comment. Empty when none was left.
func (r *Rating) Comment() string {
	return r.comment
}

func (r *Rating) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Rating) setParticipants(fromUserID, toUserID kernel.ID) error {
	if err := errors.Join(fromUserID.Validate(), toUserID.Validate()); err != nil {
		return err
	}

	if fromUserID.IsEqual(toUserID) {
		return errs.NewValueIsInvalidErrorWithCause("toUserId",
			fmt.Errorf("user %s cannot rate themselves", fromUserID.String()))
	}

	r.fromUserID = fromUserID
	r.toUserID = toUserID
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < ScoreMin || score > ScoreMax {
		return errs.NewValueIsOutOfRangeError("rating", score, ScoreMin, ScoreMax)
	}
	r.score = score
	return nil
}
