package validate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

const imageCheckMaxRetries = 3

// imageSleepFunc is the sleep function used between retries
// (injectable for tests).
var imageSleepFunc = time.Sleep

// ImageResult is the outcome of checking one image URL.
type ImageResult struct {
	URL          string `json:"url"`
	IsAccessible bool   `json:"is_accessible"`
	StatusCode   int    `json:"status_code,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ImageChecker verifies recipe image URLs concurrently with HEAD
// requests. Results are advisory import-quality warnings; a dead image
// never blocks acceptance.
type ImageChecker struct {
	httpClient *http.Client
	maxWorkers int
	userAgent  string
}

// NewImageChecker creates a checker with bounded concurrency.
func NewImageChecker(timeout time.Duration, maxWorkers int, userAgent string) *ImageChecker {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	return &ImageChecker{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		maxWorkers: maxWorkers,
		userAgent:  userAgent,
	}
}

// Check checks all image URLs concurrently, preserving input order in
// the results.
func (c *ImageChecker) Check(ctx context.Context, urls []string) []ImageResult {
	if len(urls) == 0 {
		return []ImageResult{}
	}

	results := make([]ImageResult, len(urls))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, c.maxWorkers)

	for i, u := range urls {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = ImageResult{URL: url, Error: "context cancelled"}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = c.checkSingleWithRetry(ctx, url)
		}(i, u)
	}

	wg.Wait()
	return results
}

func (c *ImageChecker) checkSingle(ctx context.Context, url string) ImageResult {
	result := ImageResult{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.IsAccessible = resp.StatusCode >= 200 && resp.StatusCode < 400

	return result
}

// checkSingleWithRetry retries transient failures with exponential
// backoff.
func (c *ImageChecker) checkSingleWithRetry(ctx context.Context, url string) ImageResult {
	var result ImageResult
	for attempt := 0; attempt < imageCheckMaxRetries; attempt++ {
		result = c.checkSingle(ctx, url)
		if !isRetryable(result) {
			return result
		}
		if attempt < imageCheckMaxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			imageSleepFunc(backoff)
		}
	}
	return result
}

// isRetryable returns true for results indicating transient failures.
func isRetryable(result ImageResult) bool {
	if result.StatusCode >= 500 && result.StatusCode < 600 {
		return true
	}
	if result.StatusCode == 429 {
		return true
	}
	if result.Error != "" {
		s := strings.ToLower(result.Error)
		return strings.Contains(s, "timeout") ||
			strings.Contains(s, "connection refused") ||
			strings.Contains(s, "connection reset")
	}
	return false
}
