package validate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestImageChecker_Check(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.jpg":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	checker := NewImageChecker(5*time.Second, 4, "forage-test")
	results := checker.Check(context.Background(), []string{
		server.URL + "/ok.jpg",
		server.URL + "/gone.jpg",
	})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if !results[0].IsAccessible {
		t.Errorf("Expected first image accessible, got %+v", results[0])
	}
	if results[1].IsAccessible {
		t.Errorf("Expected second image inaccessible, got %+v", results[1])
	}
	if results[1].StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", results[1].StatusCode)
	}
}

func TestImageChecker_RetriesServerErrors(t *testing.T) {
	// No real sleeping during the test
	originalSleep := imageSleepFunc
	imageSleepFunc = func(time.Duration) {}
	defer func() { imageSleepFunc = originalSleep }()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	checker := NewImageChecker(5*time.Second, 1, "forage-test")
	results := checker.Check(context.Background(), []string{server.URL + "/flaky.jpg"})

	if !results[0].IsAccessible {
		t.Errorf("Expected success after retries, got %+v", results[0])
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("Expected 3 attempts, got %d", got)
	}
}

func TestImageChecker_EmptyInput(t *testing.T) {
	checker := NewImageChecker(time.Second, 2, "forage-test")
	results := checker.Check(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %v", results)
	}
}
