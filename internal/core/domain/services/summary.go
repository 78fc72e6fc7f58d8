package services

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderSnapshot is the read-side projection of an order that the
// summarizer consumes. It carries only the fields the dashboard needs.
type OrderSnapshot struct {
	Status    order.Status
	Price     kernel.Money
	CreatedAt time.Time
}

// Summary holds the business dashboard figures for a single point in time.
//
// PendingCount counts orders awaiting acceptance. ActiveCount counts orders
// somewhere between acceptance and delivery. CompletedCount counts delivered
// orders. TodayRevenue sums the price of every order created on the
// reference UTC calendar day regardless of its current status.
type Summary struct {
	PendingCount   int
	ActiveCount    int
	CompletedCount int
	TodayRevenue   kernel.Money
}

// Summarize aggregates order snapshots into dashboard figures as of the
// given reference time. "Today" is the UTC calendar day of asOf, so the
// figures are stable across server time zones.
//
// The function is pure: it never mutates its input and depends only on its
// arguments.
func Summarize(snapshots []OrderSnapshot, asOf time.Time) Summary {
	var summary Summary

	day := asOf.UTC().Truncate(24 * time.Hour)

	for _, snapshot := range snapshots {
		//nolint:exhaustive
		switch snapshot.Status {
		case order.Pending:
			summary.PendingCount++
		case order.Accepted, order.PickedUp, order.InProgress, order.Ready:
			summary.ActiveCount++
		case order.Delivered:
			summary.CompletedCount++
		}

		if snapshot.CreatedAt.UTC().Truncate(24 * time.Hour).Equal(day) {
			summary.TodayRevenue = summary.TodayRevenue.Add(snapshot.Price)
		}
	}

	return summary
}
