// Package sanitize implements heuristic cleanup of recipe metadata.
// Its main job is removing tag values that are actually ingredient
// name leakage from scraped pages.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/forageapp/forage/internal/model"
)

var nonWord = regexp.MustCompile(`\W+`)

// minTokenLength: tokens and tags at or below this length carry no
// signal and are discarded.
const minTokenLength = 2

// Tags filters a recipe's tag sequence, dropping tags that derive
// from its ingredient names and tags too short to mean anything.
// The token derivation is intentionally coarse: every word of every
// ingredient phrase becomes a candidate token, so any
// ingredient-derived tag gets caught. Returns nil when filtering
// empties the sequence. Idempotent, safe as a repair pass over
// already-stored recipes.
func Tags(tags []string, ingredients []model.Ingredient) []string {
	if len(tags) == 0 {
		return nil
	}

	tokens := ingredientTokens(ingredients)

	var kept []string
	seen := make(map[string]bool)

	for _, tag := range tags {
		norm := normalize(tag)
		if len(norm) <= minTokenLength {
			continue
		}
		if tokens[norm] {
			continue
		}
		// Duplicates should not survive sanitization
		if seen[norm] {
			continue
		}
		seen[norm] = true
		kept = append(kept, tag)
	}

	return kept
}

// ingredientTokens derives the set of normalized tokens from an
// ingredient sequence. Structured ingredients contribute their name
// when present, otherwise their item text is tokenized like free text.
func ingredientTokens(ingredients []model.Ingredient) map[string]bool {
	tokens := make(map[string]bool)

	for _, ing := range ingredients {
		var source string
		if ing.IsStructured() {
			source = ing.Structured.Name
			if source == "" {
				source = ing.Structured.Item
			}
		} else {
			source = ing.Text
		}
		addTokens(tokens, source)
	}

	return tokens
}

// addTokens lowercases and splits on whitespace and commas, discards
// pure-numeric tokens and tokens of length <= 2, and strips non-word
// characters from the survivors.
func addTokens(tokens map[string]bool, text string) {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})

	for _, field := range fields {
		if len(field) <= minTokenLength {
			continue
		}
		if isNumeric(field) {
			continue
		}
		token := nonWord.ReplaceAllString(field, "")
		if token != "" {
			tokens[token] = true
		}
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func normalize(tag string) string {
	return nonWord.ReplaceAllString(strings.ToLower(tag), "")
}
