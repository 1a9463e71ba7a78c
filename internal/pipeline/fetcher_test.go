package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/forageapp/forage/internal/cache"
)

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "forage-test" {
			t.Errorf("Expected User-Agent 'forage-test', got %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte("<html>hello</html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "forage-test", 1<<20, nil)
	result, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.HTML != "<html>hello</html>" {
		t.Errorf("Unexpected HTML %q", result.HTML)
	}
	if result.Cached {
		t.Error("Expected cache miss on fresh fetch")
	}
}

func TestFetcher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "forage-test", 1<<20, nil)
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestFetcher_BodySizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "forage-test", 100, nil)
	result, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(result.HTML) != 100 {
		t.Errorf("Expected body truncated to 100 bytes, got %d", len(result.HTML))
	}
}

func TestFetcher_UsesCache(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte("<html>cached page</html>"))
	}))
	defer server.Close()

	pages := cache.NewMemoryCache(time.Minute, time.Minute)
	fetcher := NewFetcher(5*time.Second, "forage-test", 1<<20, pages)

	first, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.Cached {
		t.Error("Expected first fetch to miss the cache")
	}

	second, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !second.Cached {
		t.Error("Expected second fetch to hit the cache")
	}
	if second.HTML != first.HTML {
		t.Errorf("Expected identical HTML, got %q then %q", first.HTML, second.HTML)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("Expected 1 server hit, got %d", got)
	}
}
