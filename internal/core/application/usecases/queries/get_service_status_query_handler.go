package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/ports"
)

// GetServiceStatusQueryHandler reports provider availability from the status
// cache, falling back to a live check when no check has run yet.
type GetServiceStatusQueryHandler struct {
	gateway     ports.CourierGateway
	statusCache *session.ServiceStatusCache
}

// NewGetServiceStatusQueryHandler creates a handler for availability
// queries.
func NewGetServiceStatusQueryHandler(
	gateway ports.CourierGateway,
	statusCache *session.ServiceStatusCache,
) GetServiceStatusQueryHandler {
	return GetServiceStatusQueryHandler{
		gateway:     gateway,
		statusCache: statusCache,
	}
}

// Handle returns the provider's last known availability. The first query for
// a provider performs a live check and primes the cache.
func (h GetServiceStatusQueryHandler) Handle(
	ctx context.Context,
	query GetServiceStatusQuery,
) (GetServiceStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetServiceStatusQueryResponse{}, err
	}

	status, checkedAt, known := h.statusCache.Get(query.Provider())
	if !known {
		client, err := h.gateway.Client(query.Provider())
		if err != nil {
			return GetServiceStatusQueryResponse{}, err
		}

		checkedAt = time.Now().UTC()
		status, err = h.statusCache.Check(ctx, client, checkedAt)
		if err != nil {
			return GetServiceStatusQueryResponse{}, err
		}
	}

	return GetServiceStatusQueryResponse{
		Provider:   query.Provider(),
		Enabled:    status.Enabled,
		Configured: status.Configured,
		Available:  status.Available(),
		CheckedAt:  checkedAt,
	}, nil
}
