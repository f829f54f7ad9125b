package services

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/courier"
)

// ErrCityNotSupported is returned when the customer-entered city has no exact
// match in the provider's operational city list. The caller is expected to
// fall back to a Search and let an operator pick the replacement.
var ErrCityNotSupported = errors.New("city is not supported by the provider")

// CityMatcher is a domain service that reconciles customer-entered city names
// with a courier provider's operational city list.
//
// Matching rules:
//   - Match requires an exact, case-insensitive hit after trimming whitespace.
//     Providers reject bookings for unknown cities, so nothing fuzzier is
//     attempted automatically.
//   - Search is the operator-facing fallback: a case-insensitive substring
//     scan over city and country names, so "mult" finds "Multan City".
//
// Example usage:
//
//	matcher := services.NewCityMatcher()
//	city, err := matcher.Match("lahore ", cities)
//	if errors.Is(err, services.ErrCityNotSupported) {
//	    candidates := matcher.Search("lahore", cities)
//	    // present candidates to the operator
//	}
type CityMatcher struct{}

// NewCityMatcher creates a new CityMatcher instance.
func NewCityMatcher() CityMatcher {
	return CityMatcher{}
}

// Match returns the provider city whose operational name equals the given
// city, ignoring case and surrounding whitespace. Returns ErrCityNotSupported
// when no city matches exactly; near-misses are never auto-selected.
func (m CityMatcher) Match(city string, cities []courier.CityRecord) (courier.CityRecord, error) {
	want := normalizeCity(city)
	if want == "" {
		return courier.CityRecord{}, ErrCityNotSupported
	}

	for _, c := range cities {
		if normalizeCity(c.OperationalCityName) == want {
			return c, nil
		}
	}

	return courier.CityRecord{}, ErrCityNotSupported
}

// Search returns every provider city whose operational name or country name
// contains the query, ignoring case. An empty query returns no results rather
// than the whole list.
func (m CityMatcher) Search(query string, cities []courier.CityRecord) []courier.CityRecord {
	q := normalizeCity(query)
	if q == "" {
		return nil
	}

	var found []courier.CityRecord
	for _, c := range cities {
		if strings.Contains(normalizeCity(c.OperationalCityName), q) ||
			strings.Contains(normalizeCity(c.CountryName), q) {
			found = append(found, c)
		}
	}

	return found
}

func normalizeCity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
