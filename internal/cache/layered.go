package cache

import "time"

// LayeredCache fronts the disk cache with memory: hot pages are
// served without touching the filesystem, disk hits are promoted.
type LayeredCache struct {
	memory PageCache
	disk   PageCache
}

// NewLayeredCache creates the standard memory+disk pairing.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory first, then disk, promoting disk hits.
func (c *LayeredCache) Get(url string) ([]byte, bool) {
	if html, found := c.memory.Get(url); found {
		return html, true
	}

	if html, found := c.disk.Get(url); found {
		_ = c.memory.Set(url, html, 0)
		return html, true
	}

	return nil, false
}

// Set stores the page in both layers.
func (c *LayeredCache) Set(url string, html []byte, ttl time.Duration) error {
	if err := c.memory.Set(url, html, ttl); err != nil {
		return err
	}
	return c.disk.Set(url, html, ttl)
}

// Delete evicts from both layers.
func (c *LayeredCache) Delete(url string) error {
	_ = c.memory.Delete(url)
	_ = c.disk.Delete(url)
	return nil
}

// Clear evicts everything from both layers.
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
