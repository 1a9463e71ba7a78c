package extract

import (
	"encoding/json"

	"github.com/forageapp/forage/internal/model"
	"golang.org/x/net/html"
)

const recipeType = "Recipe"

// JSONLD scans a document's structured-data script blocks in document
// order and returns the first Recipe-typed payload. Handles payloads
// wrapped in a top-level array and nodes with multiple types. Blocks
// that fail to parse are skipped silently; a bad block must never
// abort scanning the rest of the document. Returns nil when no block
// yields a Recipe.
func JSONLD(doc *html.Node) model.Candidate {
	scripts := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "script" &&
			attr(n, "type") == "application/ld+json"
	})

	for _, script := range scripts {
		payload := rawText(script)
		if payload == "" {
			continue
		}

		var parsed interface{}
		if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
			continue
		}

		if candidate := firstRecipeNode(parsed); candidate != nil {
			return candidate
		}
	}

	return nil
}

// firstRecipeNode returns the first Recipe-typed object within a
// parsed JSON-LD payload: the payload itself, or the first matching
// element of a top-level array.
func firstRecipeNode(parsed interface{}) model.Candidate {
	switch v := parsed.(type) {
	case map[string]interface{}:
		candidate := model.Candidate(v)
		if candidate.HasType(recipeType) {
			return candidate
		}
	case []interface{}:
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				candidate := model.Candidate(m)
				if candidate.HasType(recipeType) {
					return candidate
				}
			}
		}
	}
	return nil
}
