// Package validate enforces the rules a recipe must satisfy before it
// can be persisted, and offers an optional liveness check over its
// image URLs. The core never fabricates required fields; a recipe
// missing them is rejected back to the caller.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forageapp/forage/internal/model"
)

// ErrInvalidRecipe is the sentinel wrapped by every rejection.
var ErrInvalidRecipe = errors.New("invalid recipe")

// Recipe checks the persistence invariants: a name, at least one
// ingredient, and non-negative structured quantities. All violations
// are collected into a single rejection error.
func Recipe(recipe model.Recipe) error {
	var violations []string

	if strings.TrimSpace(recipe.Name) == "" {
		violations = append(violations, "name is required")
	}
	if len(recipe.Ingredients) == 0 {
		violations = append(violations, "at least one ingredient is required")
	}

	for i, ing := range recipe.Ingredients {
		if !ing.IsStructured() {
			if strings.TrimSpace(ing.Text) == "" {
				violations = append(violations, fmt.Sprintf("ingredient %d: empty text", i+1))
			}
			continue
		}
		if q := ing.Structured.Quantity; q != nil && q.Amount < 0 {
			violations = append(violations, fmt.Sprintf("ingredient %d: negative amount %v", i+1, q.Amount))
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRecipe, strings.Join(violations, "; "))
	}
	return nil
}
