// Package llm provides the optional ingredient-structuring assist: a
// language model turns free-text ingredient lines the heuristic
// renderer cannot decompose into structured records. The import
// pipeline works fully without it, and every model response is
// re-validated before use so a hallucinated amount can never reach a
// stored recipe.
package llm

import (
	"context"
	"fmt"

	"github.com/forageapp/forage/internal/model"
)

// IngredientParser structures a single free-text ingredient line.
// A (nil, nil) return means the parser declined the line; the caller
// keeps the free-text form.
type IngredientParser interface {
	// Name returns the provider name.
	Name() string

	// Parse structures one ingredient line.
	Parse(ctx context.Context, line string) (*model.StructuredIngredient, error)
}

// Config holds parser provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey authenticates against the provider
	APIKey string

	// BaseURL overrides the provider endpoint (proxies, compatible APIs)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// ConfigFromModel maps the application config section onto the parser
// config.
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.TimeoutSeconds,
		MaxTokens: cfg.MaxTokens,
	}
}

// NewParser constructs the configured provider.
func NewParser(cfg Config) (IngredientParser, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIParser(cfg)
	case "":
		return nil, fmt.Errorf("no parser provider configured")
	default:
		return nil, fmt.Errorf("unknown parser provider: %s", cfg.Provider)
	}
}
