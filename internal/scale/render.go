package scale

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/forageapp/forage/internal/model"
)

// Rendered is one display-ready ingredient line. Scaled reports
// whether scaling was actually applied; free text without a leading
// quantity comes back unchanged with Scaled=false.
type Rendered struct {
	Text   string
	Scaled bool
}

// leadingQuantity matches a leading run of numeric/fraction tokens
// ("2", "1/4", "1 1/2", "0.5") followed by the rest of the line.
var leadingQuantity = regexp.MustCompile(`^((?:\d+(?:\.\d+)?|\d+\s*/\s*\d+)(?:\s+(?:\d+(?:\.\d+)?|\d+\s*/\s*\d+))*)\s+(\S.*)$`)

// RenderIngredient produces the display line for an ingredient at the
// given scale factor, handling both variant cases.
func RenderIngredient(ing model.Ingredient, factor float64) Rendered {
	if ing.IsStructured() {
		return renderStructured(ing.Structured, factor)
	}
	return RenderFreeText(ing.Text, factor)
}

// renderStructured scales and formats a parsed ingredient record.
// Records without a quantity render their item text unscaled.
func renderStructured(s *model.StructuredIngredient, factor float64) Rendered {
	if s.Quantity == nil {
		return Rendered{Text: s.Item, Scaled: false}
	}

	amount := Apply(s.Quantity.Amount, s.Policy, factor)

	name := s.Name
	if name == "" {
		name = nameFromItem(s.Item)
	}

	parts := []string{FormatAmount(amount)}
	if s.Quantity.Unit != "" {
		parts = append(parts, s.Quantity.Unit)
	}
	if name != "" {
		parts = append(parts, name)
	}

	text := strings.Join(parts, " ")
	if s.Prep != "" {
		text += ", " + s.Prep
	}

	return Rendered{Text: text, Scaled: factor != 1}
}

// RenderFreeText rescales the leading quantity of a free-text
// ingredient line. Lines without a parseable leading quantity are
// returned unchanged with Scaled=false; this is the documented
// degenerate case, not an error.
func RenderFreeText(text string, factor float64) Rendered {
	if factor == 1 {
		return Rendered{Text: text, Scaled: false}
	}

	match := leadingQuantity.FindStringSubmatch(text)
	if match == nil {
		return Rendered{Text: text, Scaled: false}
	}

	amount, ok := parseQuantityTokens(match[1])
	if !ok {
		return Rendered{Text: text, Scaled: false}
	}

	return Rendered{
		Text:   FormatAmount(amount*factor) + " " + match[2],
		Scaled: true,
	}
}

// parseQuantityTokens parses a leading quantity as the sum of its
// space-separated numeric/fraction tokens, so "1 1/2" is 1.5.
// Malformed tokens fail soft.
func parseQuantityTokens(s string) (float64, bool) {
	var total float64

	for _, token := range strings.Fields(s) {
		if num, den, found := strings.Cut(token, "/"); found {
			n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
			d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
			if errN != nil || errD != nil || d == 0 {
				return 0, false
			}
			total += n / d
			continue
		}

		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, false
		}
		total += v
	}

	return total, true
}

// unitWords are leading unit tokens stripped by nameFromItem. Coarse
// on purpose: the fallback only has to be best-effort.
var unitWords = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true, "lbs": true,
	"gram": true, "grams": true, "g": true, "kg": true,
	"milliliter": true, "milliliters": true, "ml": true,
	"liter": true, "liters": true, "l": true,
	"pinch": true, "pinches": true, "dash": true,
	"clove": true, "cloves": true,
	"can": true, "cans": true,
	"slice": true, "slices": true,
	"stick": true, "sticks": true,
	"bunch": true, "bunches": true,
	"package": true, "packages": true,
}

// nameFromItem extracts a best-effort ingredient name from the full
// item text by stripping a leading quantity/unit pattern and a
// trailing comma-delimited prep clause.
func nameFromItem(item string) string {
	rest := item
	if match := leadingQuantity.FindStringSubmatch(item); match != nil {
		rest = match[2]
	}

	if fields := strings.Fields(rest); len(fields) > 1 && unitWords[strings.ToLower(fields[0])] {
		rest = strings.Join(fields[1:], " ")
	}

	if idx := strings.Index(rest, ","); idx >= 0 {
		rest = rest[:idx]
	}

	return strings.TrimSpace(rest)
}
