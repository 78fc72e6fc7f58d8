package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/user"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dashboardReportJob *DashboardReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	dashboardHandler queries.GetDashboardSummaryQueryHandler,
	reporter user.Actor,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dashboardReportJob: NewDashboardReportJob(dashboardHandler, reporter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dashboardReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start dashboard report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardReportJob.Stop()
}
