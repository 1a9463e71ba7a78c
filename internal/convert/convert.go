// Package convert turns a raw schema.org-shaped extraction candidate
// into the canonical Recipe representation. Scraped markup is messy:
// most fields accept a string, an object, or an array of either, and
// durations arrive as ISO-8601 strings or bare minute counts.
package convert

import (
	"strconv"
	"strings"

	"github.com/forageapp/forage/internal/model"
)

// Recipe converts a candidate into the canonical shape. It fabricates
// nothing: absent fields stay zero, and validation of required fields
// is the caller's concern (internal/validate).
func Recipe(candidate model.Candidate, sourceURL string) model.Recipe {
	recipe := model.Recipe{
		Name:        candidate.String("name"),
		Description: candidate.String("description"),
		Author:      authorName(candidate["author"]),
		SourceURL:   sourceURL,
		Images:      imageURLs(candidate["image"]),
		Yield:       yield(candidate["recipeYield"]),
		Times:       times(candidate),
	}

	for _, line := range stringList(candidate["recipeIngredient"]) {
		recipe.Ingredients = append(recipe.Ingredients, model.FreeText(line))
	}

	recipe.Instructions = instructions(candidate["recipeInstructions"])
	recipe.Tags = tags(candidate)

	return recipe
}

// authorName handles the author field's three common shapes: a plain
// string, a Person/Organization object, or an array of either.
func authorName(v interface{}) string {
	switch a := v.(type) {
	case string:
		return strings.TrimSpace(a)
	case map[string]interface{}:
		return model.Candidate(a).String("name")
	case []interface{}:
		for _, item := range a {
			if name := authorName(item); name != "" {
				return name
			}
		}
	}
	return ""
}

// imageURLs flattens the image field: string, ImageObject, or array.
func imageURLs(v interface{}) []string {
	switch img := v.(type) {
	case string:
		if s := strings.TrimSpace(img); s != "" {
			return []string{s}
		}
	case map[string]interface{}:
		if url := model.Candidate(img).String("url"); url != "" {
			return []string{url}
		}
	case []interface{}:
		var urls []string
		for _, item := range img {
			urls = append(urls, imageURLs(item)...)
		}
		return urls
	}
	return nil
}

// yield parses recipeYield: a number, a numeric string, or text like
// "6 servings" / "Makes 12 cookies". The first number found becomes
// the amount; a trailing word becomes the unit.
func yield(v interface{}) model.Yield {
	switch y := v.(type) {
	case float64:
		return model.Yield{Amount: y, Servings: int(y)}
	case string:
		return yieldFromText(y)
	case []interface{}:
		for _, item := range y {
			if parsed := yield(item); !parsed.IsZero() {
				return parsed
			}
		}
	}
	return model.Yield{}
}

func yieldFromText(text string) model.Yield {
	for i, field := range strings.Fields(text) {
		amount, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}

		parsed := model.Yield{Amount: amount}
		if amount == float64(int(amount)) {
			parsed.Servings = int(amount)
		}

		rest := strings.Fields(text)[i+1:]
		if len(rest) > 0 {
			parsed.Unit = strings.ToLower(strings.TrimRight(rest[0], ".,"))
		}
		return parsed
	}
	return model.Yield{}
}

// times maps schema.org durations onto the canonical active/passive/
// total split: prepTime is active work, cookTime is passive.
func times(candidate model.Candidate) model.Times {
	return model.Times{
		ActiveMinutes:  minutes(candidate["prepTime"]),
		PassiveMinutes: minutes(candidate["cookTime"]),
		TotalMinutes:   minutes(candidate["totalTime"]),
	}
}

// minutes accepts an ISO-8601 duration string ("PT1H30M"), a numeric
// string, or a bare number of minutes. Unparseable input is 0.
func minutes(v interface{}) int {
	switch d := v.(type) {
	case float64:
		if d > 0 {
			return int(d)
		}
	case string:
		return parseDurationMinutes(d)
	}
	return 0
}

// instructions normalizes recipeInstructions across its observed
// shapes: a plain string, an array of strings, HowToStep objects, and
// HowToSection objects whose steps are flattened in order.
func instructions(v interface{}) []model.Instruction {
	switch inst := v.(type) {
	case string:
		return splitInstructionText(inst)
	case map[string]interface{}:
		return instructionFromObject(model.Candidate(inst))
	case []interface{}:
		var out []model.Instruction
		for _, item := range inst {
			out = append(out, instructions(item)...)
		}
		return out
	}
	return nil
}

func instructionFromObject(obj model.Candidate) []model.Instruction {
	// HowToSection: recurse into its ordered element list
	if obj.HasType("HowToSection") {
		return instructions(obj["itemListElement"])
	}

	text := obj.String("text")
	if text == "" {
		text = obj.String("name")
	}
	if text == "" {
		return nil
	}

	step := &model.StructuredInstruction{
		Step:  text,
		Image: firstString(imageURLs(obj["image"])),
	}
	return []model.Instruction{{Structured: step}}
}

// splitInstructionText breaks a single blob of instruction text on
// newlines; many sites serialize the whole method as one string.
func splitInstructionText(text string) []model.Instruction {
	var out []model.Instruction
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, model.Instruction{Text: line})
		}
	}
	return out
}

// tags folds keywords, recipeCategory, and recipeCuisine into one
// tag sequence, comma-splitting string values and deduplicating while
// preserving first occurrence.
func tags(candidate model.Candidate) []string {
	var raw []string
	for _, key := range []string{"keywords", "recipeCategory", "recipeCuisine"} {
		for _, value := range stringList(candidate[key]) {
			raw = append(raw, strings.Split(value, ",")...)
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// stringList coerces a string-or-array field into a string slice.
func stringList(v interface{}) []string {
	switch s := v.(type) {
	case string:
		if t := strings.TrimSpace(s); t != "" {
			return []string{t}
		}
	case []interface{}:
		var out []string
		for _, item := range s {
			if str, ok := item.(string); ok {
				if t := strings.TrimSpace(str); t != "" {
					out = append(out, t)
				}
			}
		}
		return out
	}
	return nil
}

func firstString(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
