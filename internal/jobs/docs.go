// Package jobs provides scheduled background tasks for the fleet service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for vehicle lifecycle management.
//
// # Available Jobs
//
// 1. MaintenanceDueJob - Runs daily to report vehicles whose scheduled
// maintenance date has been reached or passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(maintenanceDueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The maintenance due job logs query failures and keeps its schedule
// - Failed job starts propagate to the caller so startup can abort
package jobs
