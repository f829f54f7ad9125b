package services

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerCities() []courier.CityRecord {
	return []courier.CityRecord{
		{OperationalCityName: "Lahore", CountryName: "Pakistan", ProviderCityID: "1"},
		{OperationalCityName: "Karachi", CountryName: "Pakistan", ProviderCityID: "2"},
		{OperationalCityName: "Multan City", CountryName: "Pakistan", ProviderCityID: "3"},
		{OperationalCityName: "Rawalpindi", CountryName: "Pakistan", ProviderCityID: "4"},
	}
}

func Test_CityMatcher_Match(t *testing.T) {
	matcher := NewCityMatcher()

	t.Run("exact match", func(t *testing.T) {
		city, err := matcher.Match("Lahore", providerCities())
		require.NoError(t, err)
		assert.Equal(t, "1", city.ProviderCityID)
	})

	t.Run("case and whitespace are ignored", func(t *testing.T) {
		city, err := matcher.Match("  kaRACHI ", providerCities())
		require.NoError(t, err)
		assert.Equal(t, "2", city.ProviderCityID)
	})

	t.Run("partial name is not auto-selected", func(t *testing.T) {
		_, err := matcher.Match("Multan", providerCities())
		assert.ErrorIs(t, err, ErrCityNotSupported)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := matcher.Match("Springfield", providerCities())
		assert.ErrorIs(t, err, ErrCityNotSupported)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := matcher.Match("   ", providerCities())
		assert.ErrorIs(t, err, ErrCityNotSupported)
	})

	t.Run("empty city list", func(t *testing.T) {
		_, err := matcher.Match("Lahore", nil)
		assert.ErrorIs(t, err, ErrCityNotSupported)
	})
}

func Test_CityMatcher_Search(t *testing.T) {
	matcher := NewCityMatcher()

	t.Run("substring finds the operational name", func(t *testing.T) {
		found := matcher.Search("mult", providerCities())
		require.Len(t, found, 1)
		assert.Equal(t, "Multan City", found[0].OperationalCityName)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		found := matcher.Search("RAWAL", providerCities())
		require.Len(t, found, 1)
		assert.Equal(t, "Rawalpindi", found[0].OperationalCityName)
	})

	t.Run("country name is searched too", func(t *testing.T) {
		found := matcher.Search("pakistan", providerCities())
		assert.Len(t, found, 4)
	})

	t.Run("no hits", func(t *testing.T) {
		assert.Empty(t, matcher.Search("zurich", providerCities()))
	})

	t.Run("empty query returns nothing", func(t *testing.T) {
		assert.Empty(t, matcher.Search("  ", providerCities()))
	})
}
