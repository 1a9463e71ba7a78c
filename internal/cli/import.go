package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/forageapp/forage/internal/model"
	"github.com/forageapp/forage/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	outJSON   string
	outMD     string
	timeout   time.Duration
	userAgent string
	maxBytes  int64
	noCache   bool
	noRobots  bool
	llmAssist bool
	llmModel  string
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import a recipe from a web page",
	Long: `Import fetches a page, extracts its embedded recipe data
(JSON-LD first, microdata as fallback), converts it into the canonical
recipe form, cleans up ingredient-derived tags, and writes the result.

Example:
  forage import https://example.com/best-chili
  forage import https://example.com/best-chili --json chili.json --md chili.md
  forage import https://example.com/best-chili --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	// Output flags
	importCmd.Flags().StringVar(&outJSON, "json", "recipe.json", "output JSON path")
	importCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	importCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall import timeout")
	importCmd.Flags().StringVar(&userAgent, "ua", "Forage/0.1 (+https://github.com/forageapp/forage)", "HTTP User-Agent")
	importCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	importCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable page cache (force fresh fetch)")
	importCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip the robots.txt check")

	// LLM flags
	importCmd.Flags().BoolVar(&llmAssist, "llm", false, "enable LLM ingredient structuring")
	importCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runImport(cmd *cobra.Command, args []string) error {
	url := args[0]

	cfg, err := buildConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTP.Timeout = timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Importing: %s\n", url)
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	importer := pipeline.NewImporter(cfg)
	result, err := importer.ImportURL(ctx, url)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted via %s\n", result.Source)
		fmt.Fprintf(os.Stderr, "✓ %d ingredients, %d instructions\n\n",
			len(result.Recipe.Ingredients), len(result.Recipe.Instructions))
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeSource)
	if outJSON != "" {
		if err := renderer.RenderJSON(result.Recipe, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result.Recipe, outMD); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(result)
	return nil
}

// buildConfig assembles the effective configuration shared by import
// and batch: flags over FORAGE_* environment variables over the config
// file over the built-in defaults. Flags carry their own defaults, so
// only the ones actually set on the command line override.
func buildConfig(flags *pflag.FlagSet) (*model.Config, error) {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// The timeout flags differ per command ("timeout" means the whole
	// batch on forage batch), so each command applies its own.
	if flags.Changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if flags.Changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if flags.Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if flags.Changed("no-robots") {
		cfg.HTTP.RespectRobots = !noRobots
	}
	if verbose {
		cfg.Output.Verbose = true
	}

	if llmAssist {
		cfg.LLM.Provider = "openai"
		if flags.Changed("llm-model") || cfg.LLM.Model == "" {
			cfg.LLM.Model = llmModel
		}
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("no OpenAI API key: set llm.api_key or OPENAI_API_KEY")
		}
	}

	return cfg, nil
}
