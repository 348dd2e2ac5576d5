package cache

import (
	"sync"
	"time"

	"automatizalo-backend/internal/domain/content"
)

// ContactCache holds the site-wide contact block in memory with a TTL.
// The clock is injected so expiry is testable; the cache is owned by
// whoever constructs it, not by a package singleton.
type ContactCache struct {
	mu      sync.RWMutex
	value   *content.ContactInfo
	fetched time.Time
	ttl     time.Duration
	now     func() time.Time
	load    func() (*content.ContactInfo, error)
}

// NewContactCache creates a ContactCache that refreshes via load. A
// nil now defaults to time.Now.
func NewContactCache(ttl time.Duration, now func() time.Time, load func() (*content.ContactInfo, error)) *ContactCache {
	if now == nil {
		now = time.Now
	}
	return &ContactCache{ttl: ttl, now: now, load: load}
}

func (c *ContactCache) valid() bool {
	return c.value != nil && c.now().Sub(c.fetched) < c.ttl
}

// Get returns the cached contact info, refreshing it when expired.
func (c *ContactCache) Get() (*content.ContactInfo, error) {
	c.mu.RLock()
	if c.valid() {
		v := c.value
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.value, nil
	}
	v, err := c.load()
	if err != nil {
		return nil, err
	}
	c.value = v
	c.fetched = c.now()
	return v, nil
}

// Invalidate clears the cache so the next Get reloads.
func (c *ContactCache) Invalidate() {
	c.mu.Lock()
	c.value = nil
	c.mu.Unlock()
}
