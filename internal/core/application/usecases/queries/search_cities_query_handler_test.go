package queries_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/session"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/courier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var assertableErr = errors.New("provider is not configured")

func lcsCities() []courier.CityRecord {
	return []courier.CityRecord{
		{OperationalCityName: "Lahore", CountryName: "Pakistan", ProviderCityID: "11"},
		{OperationalCityName: "Sialkot", CountryName: "Pakistan", ProviderCityID: "12"},
		{OperationalCityName: "Multan City", CountryName: "Pakistan", ProviderCityID: "13"},
	}
}

func TestSearchCitiesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	client := &MockQueryCourierClient{provider: courier.ProviderLCS}
	client.On("ListCities", mock.Anything).Return(lcsCities(), nil).Once()

	gateway := &MockQueryCourierGateway{}
	gateway.On("Client", courier.ProviderLCS).Return(client, nil)

	handler := queries.NewSearchCitiesQueryHandler(gateway, session.NewCityCache())

	t.Run("empty search returns the full list", func(t *testing.T) {
		query, err := queries.NewSearchCitiesQuery(courier.ProviderLCS, "")
		require.NoError(t, err)

		cities, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Len(t, cities, 3)
	})

	t.Run("substring search filters", func(t *testing.T) {
		query, err := queries.NewSearchCitiesQuery(courier.ProviderLCS, "mult")
		require.NoError(t, err)

		cities, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Multan City", cities[0].OperationalCityName)
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		query, err := queries.NewSearchCitiesQuery(courier.ProviderLCS, "sialkot")
		require.NoError(t, err)

		cities, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Len(t, cities, 1)

		client.AssertNumberOfCalls(t, "ListCities", 1)
	})
}

func TestSearchCitiesQueryHandler_Handle_UnknownProvider(t *testing.T) {
	ctx := t.Context()

	gateway := &MockQueryCourierGateway{}
	gateway.On("Client", courier.ProviderPostex).Return(nil, assertableErr)

	handler := queries.NewSearchCitiesQueryHandler(gateway, session.NewCityCache())

	query, err := queries.NewSearchCitiesQuery(courier.ProviderPostex, "")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	assert.ErrorIs(t, err, assertableErr)
}
