package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/ports"
)

// RefreshTrackingResult is the outcome of a tracking refresh.
type RefreshTrackingResult struct {
	// RawStatus is the provider's verbatim status string.
	RawStatus string

	// CanonicalStatus is the display classification of RawStatus.
	CanonicalStatus courier.CanonicalStatus

	// Events is the shipment's scan history, oldest first.
	Events []courier.TrackingEvent

	// CheckedAt is when this refresh ran.
	CheckedAt time.Time
}

// RefreshTrackingCommandHandler fetches the current provider status for an
// order's shipment and merges it into the order record.
//
// The tracking-number precondition is checked locally first; an order
// without a pushed shipment never generates provider traffic. The merge
// itself is idempotent, so overlapping refreshes for the same order are
// harmless and not serialized.
type RefreshTrackingCommandHandler struct {
	orderClient ports.OrderClient
	gateway     ports.CourierGateway
	uowFactory  JournalUoWFactory
}

// NewRefreshTrackingCommandHandler creates a handler for tracking refreshes.
func NewRefreshTrackingCommandHandler(
	orderClient ports.OrderClient,
	gateway ports.CourierGateway,
	uowFactory JournalUoWFactory,
) RefreshTrackingCommandHandler {
	return RefreshTrackingCommandHandler{
		orderClient: orderClient,
		gateway:     gateway,
		uowFactory:  uowFactory,
	}
}

// Handle processes one tracking refresh.
//
// Returns order.ErrNotPushed when the order has no pushed shipment, and
// *courier.ProviderError when the provider rejects the track call.
func (h RefreshTrackingCommandHandler) Handle(ctx context.Context, cmd RefreshTrackingCommand) (RefreshTrackingResult, error) {
	if err := cmd.Validate(); err != nil {
		return RefreshTrackingResult{}, err
	}

	aggregate, err := h.orderClient.Get(ctx, cmd.OrderID())
	if err != nil {
		return RefreshTrackingResult{}, err
	}

	trackingNumber, err := aggregate.TrackingNumber()
	if err != nil {
		return RefreshTrackingResult{}, err
	}

	provider := aggregate.ShippingProvider().Provider()
	client, err := h.gateway.Client(provider)
	if err != nil {
		return RefreshTrackingResult{}, err
	}

	info, err := client.Track(ctx, trackingNumber)
	if err != nil {
		return RefreshTrackingResult{}, err
	}

	now := time.Now().UTC()
	if err = aggregate.ApplyTracking(info, now); err != nil {
		return RefreshTrackingResult{}, err
	}

	if err = h.orderClient.Update(ctx, aggregate); err != nil {
		return RefreshTrackingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RefreshTrackingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := journal.NewEntry(
		cmd.OrderID(), provider, journal.ActionTracked, trackingNumber, info.Raw, now)
	if err != nil {
		return RefreshTrackingResult{}, err
	}

	if err = uow.JournalRepository().Add(ctx, entry); err != nil {
		return RefreshTrackingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RefreshTrackingResult{}, err
	}

	record := aggregate.ShippingProvider()
	return RefreshTrackingResult{
		RawStatus:       record.Status(),
		CanonicalStatus: record.CanonicalStatus(),
		Events:          record.Events(),
		CheckedAt:       now,
	}, nil
}
