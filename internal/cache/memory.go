package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps recently fetched pages in process memory.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a cached page.
func (c *MemoryCache) Get(url string) ([]byte, bool) {
	if val, found := c.cache.Get(url); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a page with the given TTL.
func (c *MemoryCache) Set(url string, html []byte, ttl time.Duration) error {
	c.cache.Set(url, html, ttl)
	return nil
}

// Delete evicts a single page.
func (c *MemoryCache) Delete(url string) error {
	c.cache.Delete(url)
	return nil
}

// Clear evicts everything.
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
