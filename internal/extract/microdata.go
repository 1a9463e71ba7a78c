package extract

import (
	"strings"

	"github.com/forageapp/forage/internal/model"
	"golang.org/x/net/html"
)

// simpleProps are the microdata properties extracted by plain value
// precedence: content attribute, then href, then src, then text.
var simpleProps = []string{
	"name",
	"description",
	"image",
	"author",
	"prepTime",
	"cookTime",
	"totalTime",
	"recipeYield",
	"recipeCategory",
	"recipeCuisine",
}

// Microdata reconstructs a recipe-shaped candidate from the first
// itemscope element whose itemtype names the schema.org Recipe
// vocabulary. An itemscope shell with no extractable name and no
// ingredients is treated as no match, so the result is nil rather
// than an empty candidate.
func Microdata(doc *html.Node) model.Candidate {
	scope := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasAttr(n, "itemscope") &&
			strings.Contains(attr(n, "itemtype"), "schema.org/Recipe")
	})
	if scope == nil {
		return nil
	}

	candidate := model.Candidate{"@type": recipeType}

	for _, prop := range simpleProps {
		if node := propNode(scope, prop); node != nil {
			if value := simpleValue(node); value != "" {
				candidate[prop] = value
			}
		}
	}

	if ingredients := collectValues(scope, "recipeIngredient", contentOrText); len(ingredients) > 0 {
		candidate["recipeIngredient"] = ingredients
	}
	if instructions := collectValues(scope, "recipeInstructions", instructionValue); len(instructions) > 0 {
		candidate["recipeInstructions"] = instructions
	}

	if candidate.String("name") == "" && candidate["recipeIngredient"] == nil {
		return nil
	}

	return candidate
}

// propNode finds the first descendant tagged with the given itemprop.
func propNode(scope *html.Node, prop string) *html.Node {
	return findFirst(scope, func(n *html.Node) bool {
		return n.Type == html.ElementNode && itempropIs(n, prop)
	})
}

// itempropIs matches itemprop attributes, which may carry multiple
// space-separated property names.
func itempropIs(n *html.Node, prop string) bool {
	for _, name := range strings.Fields(attr(n, "itemprop")) {
		if name == prop {
			return true
		}
	}
	return false
}

// simpleValue extracts a property value by precedence: content, href,
// src, then trimmed text content. First non-empty wins.
func simpleValue(n *html.Node) string {
	for _, key := range []string{"content", "href", "src"} {
		if v := strings.TrimSpace(attr(n, key)); v != "" {
			return v
		}
	}
	return textContent(n)
}

// contentOrText is the value rule for ingredient elements.
func contentOrText(n *html.Node) string {
	if v := strings.TrimSpace(attr(n, "content")); v != "" {
		return v
	}
	return textContent(n)
}

// instructionValue prefers a nested text-tagged element, as emitted
// for HowToStep markup, falling back to the element's own value.
func instructionValue(n *html.Node) string {
	if textNode := propNode(n, "text"); textNode != nil && textNode != n {
		if v := contentOrText(textNode); v != "" {
			return v
		}
	}
	return contentOrText(n)
}

// collectValues gathers every descendant tagged with the given
// itemprop, in document order, as []interface{} so the candidate
// shape matches JSON-LD extraction.
func collectValues(scope *html.Node, prop string, value func(*html.Node) string) []interface{} {
	nodes := findAll(scope, func(n *html.Node) bool {
		return n.Type == html.ElementNode && itempropIs(n, prop)
	})

	var values []interface{}
	for _, n := range nodes {
		if v := value(n); v != "" {
			values = append(values, v)
		}
	}
	return values
}
