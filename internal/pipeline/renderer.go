package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/forageapp/forage/internal/model"
	"github.com/forageapp/forage/internal/scale"
)

// Renderer writes imported recipes to disk and summarizes them on
// stdout.
type Renderer struct {
	includeSource bool
}

// NewRenderer creates a renderer. includeSource controls whether the
// Markdown card links back to the source page.
func NewRenderer(includeSource bool) *Renderer {
	return &Renderer{includeSource: includeSource}
}

// RenderJSON writes the canonical recipe as indented JSON.
func (r *Renderer) RenderJSON(recipe model.Recipe, path string) error {
	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recipe: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable recipe card.
func (r *Renderer) RenderMarkdown(recipe model.Recipe, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", recipe.Name)

	if recipe.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", recipe.Description)
	}
	if recipe.Author != "" {
		fmt.Fprintf(&b, "*By %s*\n\n", recipe.Author)
	}

	if !recipe.Yield.IsZero() {
		fmt.Fprintf(&b, "**Yield:** %s\n\n", formatYield(recipe.Yield))
	}
	if recipe.Times.TotalMinutes > 0 {
		fmt.Fprintf(&b, "**Time:** %d min total", recipe.Times.TotalMinutes)
		if recipe.Times.ActiveMinutes > 0 {
			fmt.Fprintf(&b, " (%d min active)", recipe.Times.ActiveMinutes)
		}
		b.WriteString("\n\n")
	}

	b.WriteString("## Ingredients\n\n")
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(&b, "- %s\n", scale.RenderIngredient(ing, 1).Text)
	}
	b.WriteString("\n")

	if len(recipe.Instructions) > 0 {
		b.WriteString("## Instructions\n\n")
		for i, inst := range recipe.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, inst.DisplayText())
		}
		b.WriteString("\n")
	}

	if len(recipe.Tags) > 0 {
		fmt.Fprintf(&b, "**Tags:** %s\n\n", strings.Join(recipe.Tags, ", "))
	}

	if r.includeSource && recipe.SourceURL != "" {
		fmt.Fprintf(&b, "---\nClipped from %s\n", recipe.SourceURL)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write Markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen import summary to stdout.
func (r *Renderer) RenderSummary(result *ImportResult) {
	fmt.Printf("\n%s\n", result.Recipe.Name)
	fmt.Printf("  source:       %s\n", result.Source)
	fmt.Printf("  ingredients:  %d\n", len(result.Recipe.Ingredients))
	fmt.Printf("  instructions: %d\n", len(result.Recipe.Instructions))
	if len(result.Recipe.Tags) > 0 {
		fmt.Printf("  tags:         %s\n", strings.Join(result.Recipe.Tags, ", "))
	}
	for _, warning := range result.Warnings {
		fmt.Printf("  warning:      %s\n", warning)
	}
	fmt.Println()
}

func formatYield(y model.Yield) string {
	switch {
	case y.Amount > 0 && y.Unit != "":
		return fmt.Sprintf("%s %s", scale.FormatAmount(y.Amount), y.Unit)
	case y.Servings > 0:
		return fmt.Sprintf("%d servings", y.Servings)
	default:
		return scale.FormatAmount(y.Amount)
	}
}
