package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDashboardSummaryQueryHandler loads order snapshots and folds them
// through the pure summarizer.
type GetDashboardSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardSummaryQueryHandler creates a handler for dashboard reads.
func NewGetDashboardSummaryQueryHandler(db *gorm.DB) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{db: db}
}

// Handle executes the dashboard aggregation.
// Returns errs.AccessForbiddenError for non-business actors.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (DashboardSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardSummaryResponse{}, err
	}

	if query.Actor().Role() != user.Business {
		return DashboardSummaryResponse{}, errs.NewAccessForbiddenError("dashboard summary")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			price,
			created_at
		FROM orders
	`).Rows()
	if err != nil {
		return DashboardSummaryResponse{}, err
	}
	defer rows.Close()

	snapshots := make([]services.OrderSnapshot, 0)
	for rows.Next() {
		var status string
		var price int64
		var createdAt time.Time

		if err = rows.Scan(&status, &price, &createdAt); err != nil {
			return DashboardSummaryResponse{}, err
		}

		parsed, parseErr := order.StatusFromString(status)
		if parseErr != nil {
			return DashboardSummaryResponse{}, parseErr
		}

		snapshots = append(snapshots, services.OrderSnapshot{
			Status:    parsed,
			Price:     kernel.Money(price),
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return DashboardSummaryResponse{}, err
	}

	summary := services.Summarize(snapshots, query.AsOf())
	return DashboardSummaryResponse{
		PendingCount:   summary.PendingCount,
		ActiveCount:    summary.ActiveCount,
		CompletedCount: summary.CompletedCount,
		TodayRevenue:   summary.TodayRevenue.Int64(),
	}, nil
}
