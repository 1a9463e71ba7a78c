// Package cache provides the layered page cache used by the fetcher
// so re-importing or re-scaling a recipe does not refetch its source
// page. Keys are page URLs; values are raw HTML bytes.
package cache

import "time"

// PageCache is the interface shared by the memory, disk, and layered
// implementations.
type PageCache interface {
	// Get retrieves a cached page. The second return reports a hit.
	Get(url string) ([]byte, bool)

	// Set stores a page with the given TTL (0 means the cache default).
	Set(url string, html []byte, ttl time.Duration) error

	// Delete evicts a single page.
	Delete(url string) error

	// Clear evicts everything.
	Clear() error
}
