// Package jobs provides scheduled background tasks for the laundry system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the laundry service.
//
// # Available Jobs
//
// 1. DashboardReportJob - Runs every minute to log the business-wide order summary
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dashboardHandler, reporter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. The summary is an aggregate read so this
// frequency keeps the log volume low while staying current.
//
// # Error Handling
//
// - Report job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
