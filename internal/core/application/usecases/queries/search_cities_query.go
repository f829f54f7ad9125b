// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/pkg/guard"
)

var ErrSearchCitiesQueryIsNotConstructed = errors.New(
	"SearchCitiesQuery must be created via NewSearchCitiesQuery constructor",
)

// SearchCitiesQuery retrieves a provider's operational cities, optionally
// filtered by a substring query. Used by the city resolution screen.
//
// Example:
//
//	query, err := NewSearchCitiesQuery(courier.ProviderPostex, "mult")
//	if err != nil {
//	    return err
//	}
//	cities, err := handler.Handle(ctx, query)
type SearchCitiesQuery struct { //nolint:recvcheck //using for validation
	provider courier.Provider
	search   string

	guard guard.ConstructorGuard
}

// NewSearchCitiesQuery creates a query for the provider's city list.
// An empty search returns the full list.
func NewSearchCitiesQuery(provider courier.Provider, search string) (SearchCitiesQuery, error) {
	query := SearchCitiesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := provider.Validate(); err != nil {
		return SearchCitiesQuery{}, err
	}

	query.provider = provider
	query.search = search
	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchCitiesQueryIsNotConstructed if validation fails.
func (q SearchCitiesQuery) Validate() error {
	return q.guard.Validate(ErrSearchCitiesQueryIsNotConstructed)
}

// Provider returns the provider whose cities to list.
func (q SearchCitiesQuery) Provider() courier.Provider {
	return q.provider
}

// Search returns the optional substring filter.
func (q SearchCitiesQuery) Search() string {
	return q.search
}
