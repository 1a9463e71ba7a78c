package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/forageapp/forage/internal/pipeline"
)

// URLImporter imports one recipe URL; satisfied by pipeline.Importer.
type URLImporter interface {
	ImportURL(ctx context.Context, url string) (*pipeline.ImportResult, error)
}

// ImportTask imports a single URL under the batch rate limiter.
type ImportTask struct {
	URL      string
	Importer URLImporter
	Limiter  *Limiter
}

// Run executes the import.
func (t *ImportTask) Run(ctx context.Context) Outcome {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx, t.URL); err != nil {
			return &ImportOutcome{URL: t.URL, Error: err}
		}
	}

	result, err := t.Importer.ImportURL(ctx, t.URL)
	return &ImportOutcome{URL: t.URL, Result: result, Error: err}
}

// ImportOutcome is one URL's batch result.
type ImportOutcome struct {
	URL    string
	Result *pipeline.ImportResult
	Error  error
}

// Err returns the import error, if any.
func (o *ImportOutcome) Err() error {
	return o.Error
}

// BatchImporter imports many URLs concurrently.
type BatchImporter struct {
	importer    URLImporter
	concurrency int
	limiter     *Limiter
}

// NewBatchImporter creates a batch importer with the given worker
// count and per-domain rate limit.
func NewBatchImporter(importer URLImporter, concurrency int, requestsPerSecond float64, burst int) *BatchImporter {
	return &BatchImporter{
		importer:    importer,
		concurrency: concurrency,
		limiter:     NewLimiter(requestsPerSecond, burst),
	}
}

// ImportURLs imports the given URLs concurrently.
func (b *BatchImporter) ImportURLs(ctx context.Context, urls []string) []*ImportOutcome {
	if len(urls) == 0 {
		return []*ImportOutcome{}
	}

	pool := NewPoolContext(ctx, b.concurrency)
	pool.Start()

	for _, url := range urls {
		pool.Submit(&ImportTask{URL: url, Importer: b.importer, Limiter: b.limiter})
	}

	outcomes := pool.Wait()

	results := make([]*ImportOutcome, len(outcomes))
	for i, outcome := range outcomes {
		results[i] = outcome.(*ImportOutcome)
	}
	return results
}

// ImportFile reads URLs from a file (one per line, # comments and
// blanks skipped, duplicates removed) and imports them concurrently.
func (b *BatchImporter) ImportFile(ctx context.Context, path string) ([]*ImportOutcome, error) {
	urls, err := ReadURLFile(path)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.ImportURLs(ctx, urls), nil
}

// ReadURLFile reads a URL list file.
func ReadURLFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return urls, nil
}
