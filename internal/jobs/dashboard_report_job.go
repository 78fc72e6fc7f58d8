package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/user"

	"github.com/robfig/cron/v3"
)

// DashboardReportJob periodically logs the business-wide order summary.
// Runs every minute so operators can follow order flow from the logs
// without polling the dashboard endpoint.
type DashboardReportJob struct {
	handler  queries.GetDashboardSummaryQueryHandler
	reporter user.Actor
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDashboardReportJob creates a new job for reporting the dashboard summary.
// The reporter actor must carry the business role since the summary query is
// restricted to business accounts.
func NewDashboardReportJob(
	handler queries.GetDashboardSummaryQueryHandler,
	reporter user.Actor,
	logger *slog.Logger,
) *DashboardReportJob {
	return &DashboardReportJob{
		handler:  handler,
		reporter: reporter,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dashboard_report_job"),
	}
}

// Start begins the dashboard report job to run every minute.
func (j *DashboardReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetDashboardSummaryQuery(j.reporter, time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dashboard report job failed to build query", "error", err)
			return
		}

		summary, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dashboard report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Dashboard summary",
			"pending", summary.PendingCount,
			"active", summary.ActiveCount,
			"completed", summary.CompletedCount,
			"today_revenue", summary.TodayRevenue,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard report job started (running every minute)")
	return nil
}

// Stop stops the dashboard report job.
func (j *DashboardReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dashboard report job stopped")
}
