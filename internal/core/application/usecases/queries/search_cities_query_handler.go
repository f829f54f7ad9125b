package queries

import (
	"context"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// SearchCitiesQueryHandler serves city lookups from the session cache,
// fetching from the provider only on the first read.
type SearchCitiesQueryHandler struct {
	gateway   ports.CourierGateway
	cityCache *session.CityCache
	matcher   services.CityMatcher
}

// NewSearchCitiesQueryHandler creates a handler for city lookups.
func NewSearchCitiesQueryHandler(gateway ports.CourierGateway, cityCache *session.CityCache) SearchCitiesQueryHandler {
	return SearchCitiesQueryHandler{
		gateway:   gateway,
		cityCache: cityCache,
		matcher:   services.NewCityMatcher(),
	}
}

// Handle returns the provider's cities matching the query's filter, or the
// full list when the filter is empty.
func (h SearchCitiesQueryHandler) Handle(ctx context.Context, query SearchCitiesQuery) ([]courier.CityRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	client, err := h.gateway.Client(query.Provider())
	if err != nil {
		return nil, err
	}

	cities, err := h.cityCache.Get(ctx, client)
	if err != nil {
		return nil, err
	}

	if query.Search() == "" {
		return cities, nil
	}

	return h.matcher.Search(query.Search(), cities), nil
}
