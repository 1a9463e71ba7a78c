package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/forageapp/forage/internal/model"
	"github.com/forageapp/forage/internal/scale"
	"github.com/spf13/cobra"
)

var (
	scaleFactor   float64
	scaleServings int
)

// scaleCmd represents the scale command
var scaleCmd = &cobra.Command{
	Use:   "scale <recipe.json>",
	Short: "Print a recipe's ingredient list at a different scale",
	Long: `Scale loads a recipe written by 'forage import' and prints each
ingredient line rescaled. Each ingredient follows its own scaling
rule: most scale linearly, seasoning scales sub-linearly, and some
quantities (pan sizes, egg counts) snap to usable values.

Lines without a recognizable quantity are printed unchanged and
marked with '≈'.

Example:
  forage scale chili.json --factor 2
  forage scale chili.json --servings 6`,
	Args: cobra.ExactArgs(1),
	RunE: runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)

	scaleCmd.Flags().Float64Var(&scaleFactor, "factor", 1, "scale factor")
	scaleCmd.Flags().IntVar(&scaleServings, "servings", 0, "target servings (overrides --factor when the recipe has a base serving count)")
}

func runScale(cmd *cobra.Command, args []string) error {
	recipe, err := loadRecipe(args[0])
	if err != nil {
		return err
	}

	factor := scaleFactor
	if scaleServings > 0 {
		if recipe.Yield.Servings <= 0 {
			return fmt.Errorf("recipe has no base serving count; use --factor")
		}
		factor = float64(scaleServings) / float64(recipe.Yield.Servings)
	}
	if factor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %v", factor)
	}

	fmt.Printf("%s (×%s)\n\n", recipe.Name, scale.FormatAmount(factor))
	for _, ing := range recipe.Ingredients {
		rendered := scale.RenderIngredient(ing, factor)
		marker := " "
		if !rendered.Scaled && factor != 1 {
			marker = "≈" // could not scale; shown as written
		}
		fmt.Printf("%s %s\n", marker, rendered.Text)
	}

	return nil
}

func loadRecipe(path string) (*model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}

	var recipe model.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}
	return &recipe, nil
}
