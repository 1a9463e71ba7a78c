package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/forageapp/forage/internal/pipeline"
	"github.com/forageapp/forage/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency    int
	outputDir      string
	batchTimeout   time.Duration
	importTimeout  time.Duration
	perDomainRPS   float64
	perDomainBurst int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Import recipes from a file of URLs in parallel",
	Long: `Batch imports many recipe pages concurrently:
- Read URLs from the input file (one per line, # comments skipped)
- Import in parallel with a configurable worker count
- Pace requests per domain so no site gets hammered
- Write one JSON and Markdown pair per recipe

Example:
  forage batch urls.txt
  forage batch urls.txt --concurrency 8 --output-dir ./recipes
  forage batch urls.txt --rps 1 --burst 2`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./forage-recipes", "output directory for recipes")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for the batch")
	batchCmd.Flags().Float64Var(&perDomainRPS, "rps", 2, "max requests per second per domain")
	batchCmd.Flags().IntVar(&perDomainBurst, "burst", 4, "request burst per domain")

	// Inherit flags from the import command
	batchCmd.Flags().DurationVar(&importTimeout, "import-timeout", 30*time.Second, "timeout for individual imports")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Forage/0.1 (+https://github.com/forageapp/forage)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable page cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip the robots.txt check")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmAssist, "llm", false, "enable LLM ingredient structuring")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("import-timeout") {
		cfg.HTTP.Timeout = importTimeout
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.ImportWorkers = concurrency
	}
	if cmd.Flags().Changed("rps") {
		cfg.RateLimit.RequestsPerSecond = perDomainRPS
	}
	if cmd.Flags().Changed("burst") {
		cfg.RateLimit.Burst = perDomainBurst
	}

	fmt.Fprintf(os.Stderr, "\nForage batch import\n")
	fmt.Fprintf(os.Stderr, "  input:    %s\n", file)
	fmt.Fprintf(os.Stderr, "  workers:  %d\n", cfg.Concurrency.ImportWorkers)
	fmt.Fprintf(os.Stderr, "  output:   %s\n\n", outputDir)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	importer := pipeline.NewImporter(cfg)
	batch := worker.NewBatchImporter(importer, cfg.Concurrency.ImportWorkers, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	outcomes, err := batch.ImportFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeSource)
	successCount := 0
	failureCount := 0

	for _, outcome := range outcomes {
		if outcome.Err() != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.URL, outcome.Err())
			continue
		}

		slug := slugify(outcome.Result.Recipe.Name)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(outcome.Result.Recipe, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write JSON: %v\n", outcome.URL, err)
			continue
		}
		if err := renderer.RenderMarkdown(outcome.Result.Recipe, mdPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write Markdown: %v\n", outcome.URL, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%s)\n", outcome.Result.Recipe.Name, outcome.Result.Source)
	}

	fmt.Fprintf(os.Stderr, "\n  total:    %d URLs\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "  imported: %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  failed:   %d\n\n", failureCount)

	return nil
}

// slugify turns a recipe name into a safe filename.
func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "recipe"
	}
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}
