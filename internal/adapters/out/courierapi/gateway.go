// Package courierapi wires the per-provider API clients behind the
// CourierGateway port.
package courierapi

import (
	"fmt"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/ports"
)

// Gateway routes provider lookups to the registered clients.
type Gateway struct {
	clients map[courier.Provider]ports.CourierClient
}

// NewGateway creates a gateway over the given clients. Each client registers
// under the provider it reports.
func NewGateway(clients ...ports.CourierClient) *Gateway {
	registry := make(map[courier.Provider]ports.CourierClient, len(clients))
	for _, client := range clients {
		registry[client.Provider()] = client
	}
	return &Gateway{clients: registry}
}

// Client returns the client registered for the provider, or
// ErrProviderNotConfigured when no integration is wired for it.
func (g *Gateway) Client(provider courier.Provider) (ports.CourierClient, error) {
	if err := provider.Validate(); err != nil {
		return nil, err
	}

	client, ok := g.clients[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrProviderNotConfigured, provider)
	}

	return client, nil
}
