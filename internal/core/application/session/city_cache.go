package session

import (
	"context"
	"sync"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/ports"

	"golang.org/x/sync/singleflight"
)

// CityCache caches each provider's operational city list for the lifetime of
// the process. City lists change rarely and the list endpoints are slow, so
// one fetch per provider serves every subsequent match and search.
//
// Concurrent first reads for the same provider are collapsed into a single
// upstream call; losers of the race share the winner's result. A failed
// fetch caches nothing, so the next read retries.
type CityCache struct {
	group  singleflight.Group
	mu     sync.RWMutex
	cities map[courier.Provider][]courier.CityRecord
}

// NewCityCache creates an empty city cache.
func NewCityCache() *CityCache {
	return &CityCache{
		cities: make(map[courier.Provider][]courier.CityRecord),
	}
}

// Get returns the provider's city list, fetching it through the client on
// first use. The returned slice is shared; callers must not mutate it.
func (c *CityCache) Get(ctx context.Context, client ports.CourierClient) ([]courier.CityRecord, error) {
	provider := client.Provider()

	c.mu.RLock()
	cached, ok := c.cities[provider]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := c.group.Do(string(provider), func() (any, error) {
		c.mu.RLock()
		cached, ok := c.cities[provider]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		fetched, err := client.ListCities(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cities[provider] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]courier.CityRecord), nil
}

// Refresh drops the cached list and fetches a fresh one.
func (c *CityCache) Refresh(ctx context.Context, client ports.CourierClient) ([]courier.CityRecord, error) {
	c.Invalidate(client.Provider())
	return c.Get(ctx, client)
}

// Invalidate drops the cached list for the provider.
func (c *CityCache) Invalidate(provider courier.Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cities, provider)
}
