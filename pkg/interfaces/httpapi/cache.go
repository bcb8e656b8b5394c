package httpapi

import (
	"strings"
	"sync"
	"time"
)

// cacheEntry is a cached report with its expiry instant.
type cacheEntry struct {
	value      any
	expiration time.Time
}

func (e cacheEntry) expired() bool {
	return time.Now().After(e.expiration)
}

// reportCache is a TTL cache for rendered reports. Reports are pure
// projections, so a short TTL only delays visibility of concurrent
// writes; the server also invalidates a tenant's entries on every write
// it handles itself.
type reportCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *reportCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || entry.expired() {
		return nil, false
	}
	return entry.value, true
}

func (c *reportCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

// invalidateTenant drops every cached report belonging to the tenant.
// Cache keys are "tenant:..." so a prefix scan suffices.
func (c *reportCache) invalidateTenant(tenant string) {
	prefix := tenant + ":"
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
