// Package ports defines the outbound interfaces of the fulfillment core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/courier"
)

// ErrProviderNotConfigured is returned by a CourierGateway when no client is
// registered for the requested provider.
var ErrProviderNotConfigured = errors.New("courier provider is not configured")

// CourierClient is the uniform contract every courier provider integration
// implements. Implementations translate these calls into the provider's own
// API and surface failures as *courier.ProviderError so callers can classify
// them without knowing the provider.
type CourierClient interface {
	// Provider identifies which courier this client talks to.
	Provider() courier.Provider

	// Push books a shipment with the provider. The caller guarantees the
	// request's city is an operational city name; an invalid-city rejection
	// still surfaces as a ProviderError classified by IsInvalidCity.
	Push(ctx context.Context, req courier.PushRequest) (courier.PushResult, error)

	// Track fetches the current status and scan history for a consignment
	// number. Tracking is read-only on the provider side.
	Track(ctx context.Context, trackingNumber string) (courier.TrackingInfo, error)

	// Cancel requests cancellation of a booked shipment. Providers reject
	// cancels for shipments already out for delivery; that rejection comes
	// back as a ProviderError.
	Cancel(ctx context.Context, trackingNumber string) error

	// ListCities returns the provider's operational city list.
	ListCities(ctx context.Context) ([]courier.CityRecord, error)

	// GetServiceStatus reports whether the provider account is enabled and
	// fully configured for bookings.
	GetServiceStatus(ctx context.Context) (courier.ServiceStatus, error)
}

// CourierGateway resolves a CourierClient by provider. The composition root
// registers one client per configured provider.
type CourierGateway interface {
	// Client returns the client for the given provider.
	// Returns ErrProviderNotConfigured for unknown or disabled providers.
	Client(provider courier.Provider) (CourierClient, error)
}
