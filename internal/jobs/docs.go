// Package jobs provides scheduled background tasks for the parcel system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for parcel tracking.
//
// # Available Jobs
//
// 1. OverdueReportJob - Runs every minute to report in-transit parcels past the overdue threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueParcelsHandler, logger)
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
// The overdue report job uses the cron expression "0 * * * * *", firing at
// the top of every minute. The report is informational; it never mutates
// parcels, so a missed tick loses nothing.
//
// # Error Handling
//
// Query failures are logged and the job waits for the next tick. An empty
// report is the normal case and logs nothing.
package jobs
