// Package pipeline orchestrates the import flow: robots check, fetch,
// extraction, conversion to the canonical recipe, tag sanitization,
// and validation.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/forageapp/forage/internal/cache"
	"github.com/forageapp/forage/internal/convert"
	"github.com/forageapp/forage/internal/extract"
	"github.com/forageapp/forage/internal/llm"
	"github.com/forageapp/forage/internal/model"
	"github.com/forageapp/forage/internal/sanitize"
	"github.com/forageapp/forage/internal/util"
	"github.com/forageapp/forage/internal/validate"
)

// ErrNoRecipe reports a page with no extractable recipe data. The
// extractors themselves signal this as an empty result; the pipeline
// turns it into an error only because an import was explicitly
// requested.
var ErrNoRecipe = fmt.Errorf("no recipe found in page")

// Importer runs the full import flow for one URL.
type Importer struct {
	fetcher     *Fetcher
	robots      *util.RobotsChecker
	coordinator *extract.Coordinator
	images      *validate.ImageChecker
	parser      llm.IngredientParser // nil when LLM assist is disabled
	config      *model.Config
}

// NewImporter wires the import pipeline from configuration.
func NewImporter(cfg *model.Config) *Importer {
	var pages cache.PageCache
	if cfg.Cache.Enabled {
		pages = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var trace extract.Trace
	if cfg.Output.Verbose {
		trace = func(stage, detail string) {
			fmt.Fprintf(os.Stderr, "  [%s] %s\n", stage, detail)
		}
	}

	var parser llm.IngredientParser
	if cfg.LLM.Provider != "" {
		p, err := llm.NewParser(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ingredient parser disabled: %v\n", err)
		} else {
			parser = p
		}
	}

	return &Importer{
		fetcher:     NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, pages),
		robots:      util.NewRobotsChecker(cfg.HTTP.UserAgent, 10*time.Second),
		coordinator: extract.NewCoordinator(trace),
		images:      validate.NewImageChecker(10*time.Second, cfg.Concurrency.ImageWorkers, cfg.HTTP.UserAgent),
		parser:      parser,
		config:      cfg,
	}
}

// ImportResult is a successfully imported recipe plus provenance and
// advisory warnings.
type ImportResult struct {
	Recipe   model.Recipe           `json:"recipe"`
	Source   extract.Source         `json:"source"`
	Cached   bool                   `json:"cached,omitempty"`
	Images   []validate.ImageResult `json:"images,omitempty"`
	Warnings []string               `json:"warnings,omitempty"`
}

// ImportURL imports one recipe page.
func (im *Importer) ImportURL(ctx context.Context, url string) (*ImportResult, error) {
	if im.config.HTTP.RespectRobots {
		allowed, crawlDelay, err := im.robots.Allowed(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", url)
		}
		if crawlDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(crawlDelay):
			}
		}
	}

	fetched, err := im.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	candidate, source, err := im.coordinator.Extract(fetched.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if candidate == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoRecipe, url)
	}

	recipe := convert.Recipe(candidate, fetched.FinalURL)
	recipe.Tags = sanitize.Tags(recipe.Tags, recipe.Ingredients)

	result := &ImportResult{
		Recipe: recipe,
		Source: source,
		Cached: fetched.Cached,
	}

	// Optional LLM assist: structure the free-text ingredient lines the
	// heuristics cannot decompose. Failures degrade to free text.
	if im.parser != nil {
		im.structureIngredients(ctx, &result.Recipe, result)
	}

	if err := validate.Recipe(result.Recipe); err != nil {
		return nil, err
	}

	if len(recipe.Images) > 0 {
		result.Images = im.images.Check(ctx, recipe.Images)
		for _, img := range result.Images {
			if !img.IsAccessible {
				result.Warnings = append(result.Warnings, fmt.Sprintf("image not reachable: %s", img.URL))
			}
		}
	}

	return result, nil
}

// structureIngredients upgrades free-text ingredients to structured
// records via the LLM parser, keeping the free-text form whenever the
// parser fails or returns something invalid.
func (im *Importer) structureIngredients(ctx context.Context, recipe *model.Recipe, result *ImportResult) {
	for i, ing := range recipe.Ingredients {
		if ing.IsStructured() {
			continue
		}

		structured, err := im.parser.Parse(ctx, ing.Text)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("ingredient parse failed for %q: %v", ing.Text, err))
			continue
		}
		if structured == nil {
			continue
		}

		recipe.Ingredients[i] = model.Ingredient{Structured: structured}
	}
}
