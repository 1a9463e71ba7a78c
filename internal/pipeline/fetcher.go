package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/forageapp/forage/internal/cache"
)

// Fetcher retrieves page HTML, consulting the page cache first when
// one is configured.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	pages      cache.PageCache // nil disables caching
}

// NewFetcher creates a fetcher. pages may be nil to force fresh
// fetches.
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64, pages cache.PageCache) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
		pages:     pages,
	}
}

// FetchResult is the fetched page plus fetch metadata.
type FetchResult struct {
	HTML     string
	FinalURL string
	Cached   bool
}

// Fetch returns the page at rawURL, from cache when possible. Cached
// pages keep their original URL as FinalURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	if f.pages != nil {
		if html, found := f.pages.Get(rawURL); found {
			return &FetchResult{HTML: string(html), FinalURL: rawURL, Cached: true}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if f.pages != nil {
		_ = f.pages.Set(rawURL, body, 0)
	}

	return &FetchResult{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
	}, nil
}
