package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("https://example.com/a"); found {
		t.Error("Expected miss on empty cache")
	}

	if err := c.Set("https://example.com/a", []byte("<html>a</html>"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html, found := c.Get("https://example.com/a")
	if !found {
		t.Fatal("Expected hit after Set")
	}
	if !bytes.Equal(html, []byte("<html>a</html>")) {
		t.Errorf("Unexpected cached bytes %q", html)
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("https://example.com/b", []byte("<html>b</html>"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html, found := c.Get("https://example.com/b")
	if !found || !bytes.Equal(html, []byte("<html>b</html>")) {
		t.Fatalf("Expected cached page back, got found=%v html=%q", found, html)
	}

	// A negative TTL is already expired
	if err := c.Set("https://example.com/c", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("https://example.com/c"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.disk.Set("https://example.com/d", []byte("<html>d</html>"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, found := c.memory.Get("https://example.com/d"); found {
		t.Fatal("Expected memory miss before first Get")
	}

	if _, found := c.Get("https://example.com/d"); !found {
		t.Fatal("Expected layered hit from disk")
	}

	if _, found := c.memory.Get("https://example.com/d"); !found {
		t.Error("Expected disk hit promoted to memory")
	}
}

func TestLayeredCache_Delete(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Minute)

	if err := c.Set("https://example.com/e", []byte("e"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := c.Delete("https://example.com/e"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("https://example.com/e"); found {
		t.Error("Expected miss after delete")
	}
}
