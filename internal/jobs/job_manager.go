package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
)

// Schedules holds the cron specs for the background jobs. Empty fields fall
// back to the per-job defaults.
type Schedules struct {
	TrackingRefresh string
	ServiceStatus   string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	trackingRefreshJob *TrackingRefreshJob
	serviceStatusJob   *ServiceStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orderClient ports.OrderClient,
	gateway ports.CourierGateway,
	statusCache *session.ServiceStatusCache,
	refreshHandler commands.RefreshTrackingCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trackingRefreshJob: NewTrackingRefreshJob(orderClient, refreshHandler, schedules.TrackingRefresh, logger),
		serviceStatusJob:   NewServiceStatusJob(gateway, statusCache, schedules.ServiceStatus, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.serviceStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start service status job: %w", err)
	}

	if err := jm.trackingRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.serviceStatusJob.Stop()
		return fmt.Errorf("failed to start tracking refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingRefreshJob.Stop()
	jm.serviceStatusJob.Stop()
}
