// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic provider interactions the workflow depends on.
//
// # Available Jobs
//
// 1. TrackingRefreshJob - Walks pushed orders with active shipments and refreshes their tracking state
// 2. ServiceStatusJob - Probes every courier provider and keeps the service status cache warm
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderClient, gateway, statusCache, refreshHandler, schedules, logger)
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
// Schedules are cron expressions with a seconds field. The defaults refresh
// tracking every ten minutes and probe provider status every five; both can
// be overridden through configuration.
//
// # Error Handling
//
// - The tracking job logs per-order failures and continues the walk
// - The status job keeps the last known flags when a probe fails
// - Failed job starts will stop any already running jobs
package jobs
