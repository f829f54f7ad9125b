package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// defaultServiceStatusSpec probes the providers every five minutes.
const defaultServiceStatusSpec = "0 */5 * * * *"

// ServiceStatusJob periodically probes every courier provider and keeps the
// service status cache warm, so push guards and status screens read cached
// flags instead of hitting the providers.
type ServiceStatusJob struct {
	gateway     ports.CourierGateway
	statusCache *session.ServiceStatusCache
	cron        *cron.Cron
	spec        string
	logger      *slog.Logger
}

// NewServiceStatusJob creates the status probe job. An empty schedule spec
// falls back to the five-minute default.
func NewServiceStatusJob(
	gateway ports.CourierGateway,
	statusCache *session.ServiceStatusCache,
	spec string,
	logger *slog.Logger,
) *ServiceStatusJob {
	if spec == "" {
		spec = defaultServiceStatusSpec
	}

	return &ServiceStatusJob{
		gateway:     gateway,
		statusCache: statusCache,
		cron:        cron.New(cron.WithSeconds()),
		spec:        spec,
		logger:      logger.With("component", "service_status_job"),
	}
}

// Start schedules the probes and runs one immediately, so the cache is warm
// before the first push arrives.
func (j *ServiceStatusJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	go j.run(context.Background())

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Service status job started", "schedule", j.spec)
	return nil
}

// Stop stops the scheduled probes.
func (j *ServiceStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Service status job stopped")
}

func (j *ServiceStatusJob) run(ctx context.Context) {
	for _, provider := range courier.AllProviders() {
		client, err := j.gateway.Client(provider)
		if err != nil {
			continue
		}

		if _, err = j.statusCache.Check(ctx, client, time.Now().UTC()); err != nil {
			// A failed probe keeps the last known flags in the cache.
			j.logger.WarnContext(ctx, "Provider status probe failed",
				"provider", provider.String(), "error", err)
		}
	}
}
