package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists fetched pages across runs. URLs are hashed into
// filenames; each file carries the page bytes and its expiry.
type DiskCache struct {
	dir string
	ttl time.Duration
}

// NewDiskCache creates a disk cache rooted at dir.
func NewDiskCache(dir string, ttl time.Duration) *DiskCache {
	return &DiskCache{
		dir: dir,
		ttl: ttl,
	}
}

type pageEntry struct {
	URL       string    `json:"url"`
	HTML      []byte    `json:"html"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a cached page, evicting it when expired.
func (c *DiskCache) Get(url string) ([]byte, bool) {
	path := c.path(url)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry pageEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false
	}

	return entry.HTML, true
}

// Set stores a page. A zero TTL uses the cache default.
func (c *DiskCache) Set(url string, html []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	entry := pageEntry{
		URL:       url,
		HTML:      html,
		ExpiresAt: time.Now().Add(ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	if err := os.WriteFile(c.path(url), data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}

	return nil
}

// Delete evicts a single page.
func (c *DiskCache) Delete(url string) error {
	return os.Remove(c.path(url))
}

// Clear removes the whole cache directory.
func (c *DiskCache) Clear() error {
	return os.RemoveAll(c.dir)
}

// path hashes the URL into a stable filename; raw URLs are not safe
// path components.
func (c *DiskCache) path(url string) string {
	sum := sha1.Sum([]byte(url))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".page")
}
