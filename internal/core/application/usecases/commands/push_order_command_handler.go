package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/journal"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

var (
	// ErrCityResolutionRequired is returned when the order's city has no
	// exact match in the provider's city list. The push is parked; the
	// result carries operator-facing candidates.
	ErrCityResolutionRequired = errors.New("city resolution required before push")

	// ErrProviderUnavailable is returned when the provider account is known
	// to be disabled or misconfigured.
	ErrProviderUnavailable = errors.New("courier provider is unavailable")
)

// PushOrderResult is the outcome of a push attempt.
type PushOrderResult struct {
	// TrackingNumber is the provider-issued consignment number.
	TrackingNumber string

	// OrderRefNumber is the provider-side order reference.
	OrderRefNumber string

	// LabelURL points at the printable shipping label, when issued.
	LabelURL string

	// OrderStatus is the order's status after the push.
	OrderStatus order.Status

	// CityCandidates holds operator-facing suggestions when the push stopped
	// on ErrCityResolutionRequired. Empty otherwise.
	CityCandidates []courier.CityRecord
}

// PushOrderCommandHandler orchestrates the push workflow: precondition
// checks, city matching, the provider booking call, the order write-back and
// the journal entry.
//
// Ordering of the guards matters. Everything local runs before the first
// network call, so an already-pushed or non-Pending order never reaches the
// provider. The durable journal check runs after the in-memory ones because
// it costs a query.
type PushOrderCommandHandler struct {
	orderClient ports.OrderClient
	gateway     ports.CourierGateway
	cityCache   *session.CityCache
	statusCache *session.ServiceStatusCache
	sessions    *session.PushSessions
	matcher     services.CityMatcher
	uowFactory  JournalUoWFactory
}

// NewPushOrderCommandHandler creates a handler for push operations.
func NewPushOrderCommandHandler(
	orderClient ports.OrderClient,
	gateway ports.CourierGateway,
	cityCache *session.CityCache,
	statusCache *session.ServiceStatusCache,
	sessions *session.PushSessions,
	uowFactory JournalUoWFactory,
) PushOrderCommandHandler {
	return PushOrderCommandHandler{
		orderClient: orderClient,
		gateway:     gateway,
		cityCache:   cityCache,
		statusCache: statusCache,
		sessions:    sessions,
		matcher:     services.NewCityMatcher(),
		uowFactory:  uowFactory,
	}
}

// Handle processes one push attempt.
//
// Failure modes:
//   - session.ErrPushInFlight: another push for the order is running
//   - order.ErrAlreadyPushed: the order already has a pushed shipment,
//     locally or per the journal
//   - ErrProviderUnavailable: the provider account is known unusable
//   - ErrCityResolutionRequired: no exact city match; the push is parked and
//     the result carries candidates
//   - *courier.ProviderError: the provider rejected the booking
func (h PushOrderCommandHandler) Handle(ctx context.Context, cmd PushOrderCommand) (PushOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PushOrderResult{}, err
	}

	if err := h.sessions.Begin(cmd.OrderID()); err != nil {
		return PushOrderResult{}, err
	}
	defer h.sessions.End(cmd.OrderID())

	aggregate, err := h.orderClient.Get(ctx, cmd.OrderID())
	if err != nil {
		return PushOrderResult{}, err
	}

	if err = aggregate.ValidatePush(); err != nil {
		return PushOrderResult{}, err
	}

	if status, _, known := h.statusCache.Get(cmd.Provider()); known && !status.Available() {
		return PushOrderResult{}, ErrProviderUnavailable
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PushOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	journalRepo := uow.JournalRepository()

	pushed, err := journalRepo.HasPush(ctx, cmd.OrderID())
	if err != nil {
		return PushOrderResult{}, err
	}
	if pushed {
		return PushOrderResult{}, order.ErrAlreadyPushed
	}

	client, err := h.gateway.Client(cmd.Provider())
	if err != nil {
		return PushOrderResult{}, err
	}

	cities, err := h.cityCache.Get(ctx, client)
	if err != nil {
		return PushOrderResult{}, err
	}

	city, err := h.matcher.Match(aggregate.ShippingAddress().City(), cities)
	if errors.Is(err, services.ErrCityNotSupported) {
		return h.parkForResolution(aggregate, cmd.Provider(), cities), ErrCityResolutionRequired
	}
	if err != nil {
		return PushOrderResult{}, err
	}

	result, err := client.Push(ctx, buildPushRequest(aggregate, city))
	if err != nil {
		var provErr *courier.ProviderError
		if errors.As(err, &provErr) && provErr.IsInvalidCity() {
			// The cached list was stale; the next read refetches it.
			h.cityCache.Invalidate(cmd.Provider())
			return h.parkForResolution(aggregate, cmd.Provider(), cities), ErrCityResolutionRequired
		}
		return PushOrderResult{}, err
	}

	now := time.Now().UTC()
	record, err := order.NewShippingProviderRecord(
		cmd.Provider(),
		result.OrderRefNumber,
		result.TrackingNumber,
		result.LabelURL,
		result.Raw,
		now,
	)
	if err != nil {
		return PushOrderResult{}, err
	}

	if err = aggregate.MarkPushed(record, statusAfterPush(result.OrderStatus)); err != nil {
		return PushOrderResult{}, err
	}

	if err = h.orderClient.Update(ctx, aggregate); err != nil {
		return PushOrderResult{}, err
	}

	entry, err := journal.NewEntry(
		cmd.OrderID(), cmd.Provider(), journal.ActionPushed, result.TrackingNumber, result.Raw, now)
	if err != nil {
		return PushOrderResult{}, err
	}

	if err = journalRepo.Add(ctx, entry); err != nil {
		return PushOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PushOrderResult{}, err
	}

	return PushOrderResult{
		TrackingNumber: result.TrackingNumber,
		OrderRefNumber: result.OrderRefNumber,
		LabelURL:       result.LabelURL,
		OrderStatus:    aggregate.Status(),
	}, nil
}

// parkForResolution stores the pending push and assembles operator-facing
// city candidates from the provider list.
func (h PushOrderCommandHandler) parkForResolution(
	aggregate *order.Order,
	provider courier.Provider,
	cities []courier.CityRecord,
) PushOrderResult {
	requested := aggregate.ShippingAddress().City()

	h.sessions.Park(session.PendingPush{
		OrderID:       aggregate.ID(),
		Provider:      provider,
		RequestedCity: requested,
		StartedAt:     time.Now().UTC(),
	})

	return PushOrderResult{
		CityCandidates: h.matcher.Search(requested, cities),
	}
}

// statusAfterPush maps the provider's post-booking order status onto the
// local state machine. Anything unrecognized or out of range stays Pending;
// the next tracking refresh catches up.
func statusAfterPush(raw string) order.Status {
	status, err := order.StatusFromString(raw)
	if err != nil || (status != order.Pending && status != order.Shipped) {
		return order.Pending
	}
	return status
}

// buildPushRequest assembles the provider booking payload from the order.
func buildPushRequest(aggregate *order.Order, city courier.CityRecord) courier.PushRequest {
	addr := aggregate.ShippingAddress()

	var items []string
	for _, line := range aggregate.Cart() {
		desc := fmt.Sprintf("%d x %s", line.Quantity(), line.Title())
		if line.Variant() != "" {
			desc = fmt.Sprintf("%s (%s)", desc, line.Variant())
		}
		items = append(items, desc)
	}

	return courier.PushRequest{
		OrderID:          aggregate.ID().String(),
		CustomerName:     addr.FullName(),
		CustomerPhone:    addr.Mobile(),
		DeliveryAddress:  addr.StreetAddress(),
		CityName:         city.OperationalCityName,
		CityCode:         city.ProviderCityCode,
		CODAmount:        aggregate.TotalPrice(),
		ItemsDescription: strings.Join(items, ", "),
		Pieces:           1,
		Instructions:     addr.Instructions(),
	}
}
