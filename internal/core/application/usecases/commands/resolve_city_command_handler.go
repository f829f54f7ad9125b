package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ResolveCityCommandHandler applies the operator's city selection and
// resumes the parked push.
//
// The pending state is consumed before anything else happens, so a parked
// push resumes at most once even under concurrent resolution attempts. The
// selected city must be an exact entry of the provider's list; the handler
// re-checks rather than trusting the operator's input.
type ResolveCityCommandHandler struct {
	orderClient ports.OrderClient
	gateway     ports.CourierGateway
	cityCache   *session.CityCache
	sessions    *session.PushSessions
	matcher     services.CityMatcher
	uowFactory  JournalUoWFactory
	pushHandler PushOrderCommandHandler
}

// NewResolveCityCommandHandler creates a handler for city resolution.
// The push handler is reused to run the resumed push through the exact same
// guard chain as a fresh one.
func NewResolveCityCommandHandler(
	orderClient ports.OrderClient,
	gateway ports.CourierGateway,
	cityCache *session.CityCache,
	sessions *session.PushSessions,
	uowFactory JournalUoWFactory,
	pushHandler PushOrderCommandHandler,
) ResolveCityCommandHandler {
	return ResolveCityCommandHandler{
		orderClient: orderClient,
		gateway:     gateway,
		cityCache:   cityCache,
		sessions:    sessions,
		matcher:     services.NewCityMatcher(),
		uowFactory:  uowFactory,
		pushHandler: pushHandler,
	}
}

// Handle consumes the pending resolution, validates the selected city
// against the provider list, rewrites the order's destination city and
// resumes the push.
//
// Returns session.ErrNoPendingResolution when nothing is parked for the
// order, and services.ErrCityNotSupported when the selection is not an
// exact provider city. On resume failure the pending state stays consumed;
// the operator starts over with a fresh push.
func (h ResolveCityCommandHandler) Handle(ctx context.Context, cmd ResolveCityCommand) (PushOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PushOrderResult{}, err
	}

	pending, err := h.sessions.TakePending(cmd.OrderID())
	if err != nil {
		return PushOrderResult{}, err
	}

	client, err := h.gateway.Client(pending.Provider)
	if err != nil {
		return PushOrderResult{}, err
	}

	cities, err := h.cityCache.Get(ctx, client)
	if err != nil {
		return PushOrderResult{}, err
	}

	city, err := h.matcher.Match(cmd.CityName(), cities)
	if err != nil {
		return PushOrderResult{}, err
	}

	if err = h.orderClient.UpdateShippingCity(ctx, cmd.OrderID(), city.OperationalCityName); err != nil {
		return PushOrderResult{}, err
	}

	if err = h.journalResolution(ctx, cmd, pending, city.OperationalCityName); err != nil {
		return PushOrderResult{}, err
	}

	pushCmd, err := NewPushOrderCommand(cmd.OrderID(), pending.Provider)
	if err != nil {
		return PushOrderResult{}, err
	}

	return h.pushHandler.Handle(ctx, pushCmd)
}

// journalResolution records the city rewrite in the shipment journal.
func (h ResolveCityCommandHandler) journalResolution(
	ctx context.Context,
	cmd ResolveCityCommand,
	pending session.PendingPush,
	resolvedCity string,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	details := fmt.Appendf(nil, `{"requestedCity":%q,"resolvedCity":%q}`, pending.RequestedCity, resolvedCity)

	entry, err := journal.NewEntry(
		cmd.OrderID(), pending.Provider, journal.ActionCityResolved, "", details, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.JournalRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
