package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CancelShipmentCommandHandler cancels a pushed shipment with the provider
// and mirrors the cancellation into the order.
//
// Local preconditions run before the provider call: the order must have a
// pushed shipment with a tracking number and must not be in a terminal
// status. The order transitions only after the provider accepted the
// cancel; a provider rejection leaves the order untouched.
type CancelShipmentCommandHandler struct {
	orderClient ports.OrderClient
	gateway     ports.CourierGateway
	sessions    *session.PushSessions
	uowFactory  JournalUoWFactory
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancels.
func NewCancelShipmentCommandHandler(
	orderClient ports.OrderClient,
	gateway ports.CourierGateway,
	sessions *session.PushSessions,
	uowFactory JournalUoWFactory,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		orderClient: orderClient,
		gateway:     gateway,
		sessions:    sessions,
		uowFactory:  uowFactory,
	}
}

// Handle processes one cancel.
//
// Returns order.ErrNotPushed when no pushed shipment exists, a status error
// when the order is already terminal, and *courier.ProviderError when the
// provider rejects the cancel.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderClient.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	trackingNumber, err := aggregate.TrackingNumber()
	if err != nil {
		return err
	}

	if aggregate.Status().IsTerminal() {
		return errs.NewValueIsInvalidError("status")
	}

	provider := aggregate.ShippingProvider().Provider()
	client, err := h.gateway.Client(provider)
	if err != nil {
		return err
	}

	if err = client.Cancel(ctx, trackingNumber); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.MarkCancelled(now); err != nil {
		return err
	}

	if err = h.orderClient.Update(ctx, aggregate); err != nil {
		return err
	}

	// A parked city resolution is meaningless for a cancelled order.
	h.sessions.DropPending(cmd.OrderID())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := journal.NewEntry(
		cmd.OrderID(), provider, journal.ActionCancelled, trackingNumber, nil, now)
	if err != nil {
		return err
	}

	if err = uow.JournalRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
