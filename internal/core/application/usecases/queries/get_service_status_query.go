package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/pkg/guard"
)

var ErrGetServiceStatusQueryIsNotConstructed = errors.New(
	"GetServiceStatusQuery must be created via NewGetServiceStatusQuery constructor",
)

// GetServiceStatusQuery retrieves the availability of a courier provider
// account.
type GetServiceStatusQuery struct { //nolint:recvcheck //using for validation
	provider courier.Provider

	guard guard.ConstructorGuard
}

// NewGetServiceStatusQuery creates a query for the provider's availability.
func NewGetServiceStatusQuery(provider courier.Provider) (GetServiceStatusQuery, error) {
	if err := provider.Validate(); err != nil {
		return GetServiceStatusQuery{}, err
	}

	return GetServiceStatusQuery{
		provider: provider,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetServiceStatusQueryIsNotConstructed if validation fails.
func (q GetServiceStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceStatusQueryIsNotConstructed)
}

// Provider returns the provider whose status to report.
func (q GetServiceStatusQuery) Provider() courier.Provider {
	return q.provider
}

// GetServiceStatusQueryResponse is the availability read model.
type GetServiceStatusQueryResponse struct {
	Provider   courier.Provider
	Enabled    bool
	Configured bool
	Available  bool
	CheckedAt  time.Time
}
