package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

// GetDashboardSummaryQuery retrieves the business dashboard figures:
// order counts per lifecycle bucket plus today's revenue.
type GetDashboardSummaryQuery struct {
	actor user.Actor
	asOf  time.Time

	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a dashboard query as of the given
// reference time. Business staff only.
func NewGetDashboardSummaryQuery(actor user.Actor, asOf time.Time) (GetDashboardSummaryQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDashboardSummaryQuery{}, err
	}
	if asOf.IsZero() {
		return GetDashboardSummaryQuery{}, errs.NewValueIsRequiredError("asOf")
	}

	return GetDashboardSummaryQuery{
		actor: actor,
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// Actor returns the authenticated caller.
func (q GetDashboardSummaryQuery) Actor() user.Actor {
	return q.actor
}

// AsOf returns the reference time the figures are computed against.
func (q GetDashboardSummaryQuery) AsOf() time.Time {
	return q.asOf
}

// DashboardSummaryResponse carries the aggregated dashboard figures.
// Revenue is in minor units and covers orders created on the reference
// UTC calendar day.
type DashboardSummaryResponse struct {
	PendingCount   int
	ActiveCount    int
	CompletedCount int
	TodayRevenue   int64
}
