package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	asOf := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)
	today := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	yesterday := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)

	t.Run("empty input yields all-zero summary", func(t *testing.T) {
		summary := services.Summarize(nil, asOf)

		assert.Equal(t, services.Summary{}, summary)
	})

	t.Run("counts buckets by status", func(t *testing.T) {
		snapshots := []services.OrderSnapshot{
			{Status: order.Pending, Price: kernel.Money(100), CreatedAt: yesterday},
			{Status: order.Pending, Price: kernel.Money(100), CreatedAt: yesterday},
			{Status: order.Accepted, Price: kernel.Money(100), CreatedAt: yesterday},
			{Status: order.PickedUp, Price: kernel.Money(100), CreatedAt: yesterday},
			{Status: order.InProgress, Price: kernel.Money(100), CreatedAt: yesterday},
			{Status: order.Ready, Price: kernel.Money(100), CreatedAt: yesterday},
			{Status: order.Delivered, Price: kernel.Money(100), CreatedAt: yesterday},
		}

		summary := services.Summarize(snapshots, asOf)

		assert.Equal(t, 2, summary.PendingCount)
		assert.Equal(t, 4, summary.ActiveCount)
		assert.Equal(t, 1, summary.CompletedCount)
	})

	t.Run("delivering and cancelled count in no bucket", func(t *testing.T) {
		snapshots := []services.OrderSnapshot{
			{Status: order.Delivering, Price: kernel.Money(100), CreatedAt: yesterday},
			{Status: order.Cancelled, Price: kernel.Money(100), CreatedAt: yesterday},
		}

		summary := services.Summarize(snapshots, asOf)

		assert.Zero(t, summary.PendingCount)
		assert.Zero(t, summary.ActiveCount)
		assert.Zero(t, summary.CompletedCount)
	})

	t.Run("revenue sums the reference UTC day only", func(t *testing.T) {
		snapshots := []services.OrderSnapshot{
			{Status: order.Pending, Price: kernel.Money(700), CreatedAt: today},
			{Status: order.Cancelled, Price: kernel.Money(300), CreatedAt: today},
			{Status: order.Delivered, Price: kernel.Money(9000), CreatedAt: yesterday},
		}

		summary := services.Summarize(snapshots, asOf)

		assert.Equal(t, kernel.Money(1000), summary.TodayRevenue)
	})

	t.Run("day boundary follows UTC regardless of input zone", func(t *testing.T) {
		casablanca := time.FixedZone("UTC+1", 3600)
		// 00:30 June 3rd local is still June 2nd in UTC.
		snapshots := []services.OrderSnapshot{
			{Status: order.Pending, Price: kernel.Money(500), CreatedAt: time.Date(2025, 6, 3, 0, 30, 0, 0, casablanca)},
		}

		summary := services.Summarize(snapshots, asOf)

		assert.Equal(t, kernel.Money(500), summary.TodayRevenue)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		snapshots := []services.OrderSnapshot{
			{Status: order.Pending, Price: kernel.Money(700), CreatedAt: today},
			{Status: order.Delivered, Price: kernel.Money(300), CreatedAt: yesterday},
		}
		original := make([]services.OrderSnapshot, len(snapshots))
		copy(original, snapshots)

		services.Summarize(snapshots, asOf)

		assert.Equal(t, original, snapshots)
	})
}
