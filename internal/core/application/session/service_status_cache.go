package session

import (
	"context"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/ports"
)

// ServiceStatusCache holds the last known availability of each provider
// account. The status re-check job refreshes it periodically; reads never
// block on the provider.
type ServiceStatusCache struct {
	mu       sync.RWMutex
	statuses map[courier.Provider]statusRecord
}

type statusRecord struct {
	status    courier.ServiceStatus
	checkedAt time.Time
}

// NewServiceStatusCache creates an empty status cache.
func NewServiceStatusCache() *ServiceStatusCache {
	return &ServiceStatusCache{
		statuses: make(map[courier.Provider]statusRecord),
	}
}

// Get returns the last known status for the provider and when it was
// checked. The second return is false when no check has run yet.
func (c *ServiceStatusCache) Get(provider courier.Provider) (courier.ServiceStatus, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.statuses[provider]
	return rec.status, rec.checkedAt, ok
}

// Set stores a freshly checked status.
func (c *ServiceStatusCache) Set(provider courier.Provider, status courier.ServiceStatus, checkedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[provider] = statusRecord{status: status, checkedAt: checkedAt}
}

// Check fetches the current status from the provider and stores it.
func (c *ServiceStatusCache) Check(ctx context.Context, client ports.CourierClient, now time.Time) (courier.ServiceStatus, error) {
	status, err := client.GetServiceStatus(ctx)
	if err != nil {
		return courier.ServiceStatus{}, err
	}
	c.Set(client.Provider(), status, now)
	return status, nil
}
