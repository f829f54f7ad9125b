package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// defaultTrackingRefreshSpec runs the refresh every ten minutes.
const defaultTrackingRefreshSpec = "0 */10 * * * *"

// TrackingRefreshJob periodically walks the pushed orders that are still
// moving and refreshes their tracking state from the courier backends.
type TrackingRefreshJob struct {
	orderClient ports.OrderClient
	handler     commands.RefreshTrackingCommandHandler
	cron        *cron.Cron
	spec        string
	logger      *slog.Logger
}

// NewTrackingRefreshJob creates the tracking refresh job. An empty schedule
// spec falls back to the ten-minute default.
func NewTrackingRefreshJob(
	orderClient ports.OrderClient,
	handler commands.RefreshTrackingCommandHandler,
	spec string,
	logger *slog.Logger,
) *TrackingRefreshJob {
	if spec == "" {
		spec = defaultTrackingRefreshSpec
	}

	return &TrackingRefreshJob{
		orderClient: orderClient,
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		spec:        spec,
		logger:      logger.With("component", "tracking_refresh_job"),
	}
}

// Start schedules the refresh runs.
func (j *TrackingRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking refresh job started", "schedule", j.spec)
	return nil
}

// Stop stops the scheduled refresh runs.
func (j *TrackingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking refresh job stopped")
}

// run refreshes every active shipment once. A failure on one order does not
// stop the walk; providers fail independently.
func (j *TrackingRefreshJob) run(ctx context.Context) {
	orders, err := j.orderClient.GetPushedActive(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list active shipments", "error", err)
		return
	}

	for _, aggregate := range orders {
		if j.skip(aggregate) {
			continue
		}

		cmd, err := commands.NewRefreshTrackingCommand(aggregate.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build refresh command",
				"orderId", aggregate.ID().String(), "error", err)
			continue
		}

		if _, err = j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, order.ErrNotPushed) {
				continue
			}
			j.logger.WarnContext(ctx, "Tracking refresh failed",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}
}

// skip filters orders whose shipments will not move again. The backend list
// should already exclude them, but the local check keeps a stale backend
// filter from producing pointless provider calls.
func (j *TrackingRefreshJob) skip(aggregate *order.Order) bool {
	record := aggregate.ShippingProvider()
	if record == nil || !record.Pushed() {
		return true
	}
	return record.CanonicalStatus().IsTerminal()
}
