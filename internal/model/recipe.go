package model

// Recipe is the canonical, normalized recipe representation. It is
// distinct from the raw schema.org-shaped Candidate produced by
// extraction; conversion between the two lives in internal/convert.
//
// Recipes are value objects: nothing in this module mutates a Recipe
// in place. Scaling and tag sanitization produce projections.
type Recipe struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	SourceURL   string `json:"source_url,omitempty"`

	Images []string `json:"images,omitempty"`

	Yield Yield `json:"yield,omitempty"`
	Times Times `json:"times,omitempty"`

	Ingredients  []Ingredient  `json:"ingredients"` // order-significant
	Instructions []Instruction `json:"instructions,omitempty"`

	Equipment []string `json:"equipment,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Yield describes how much a recipe makes.
type Yield struct {
	Amount   float64 `json:"amount,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Servings int     `json:"servings,omitempty"`
}

// IsZero reports whether no yield information is present.
func (y Yield) IsZero() bool {
	return y.Amount == 0 && y.Unit == "" && y.Servings == 0
}

// Times holds recipe durations in whole minutes. Zero means unknown.
type Times struct {
	ActiveMinutes  int `json:"active_minutes,omitempty"`
	PassiveMinutes int `json:"passive_minutes,omitempty"`
	TotalMinutes   int `json:"total_minutes,omitempty"`
}

// Ingredient is a two-case tagged variant: either free text or a
// structured record. Exactly one case is populated; consumers must
// handle both.
type Ingredient struct {
	// Text is the free-text case ("2 cups flour, sifted").
	Text string `json:"text,omitempty"`

	// Structured is the parsed case. Nil when Text is set.
	Structured *StructuredIngredient `json:"structured,omitempty"`
}

// FreeText builds a free-text ingredient.
func FreeText(s string) Ingredient {
	return Ingredient{Text: s}
}

// IsStructured reports which variant case this ingredient carries.
func (i Ingredient) IsStructured() bool {
	return i.Structured != nil
}

// StructuredIngredient is the parsed ingredient record.
type StructuredIngredient struct {
	// Item preserves the full original ingredient text.
	Item string `json:"item"`

	// Quantity is absent for unquantified items ("salt to taste").
	Quantity *Quantity `json:"quantity,omitempty"`

	Name        string `json:"name,omitempty"` // normalized ingredient name
	Prep        string `json:"prep,omitempty"`
	Destination string `json:"destination,omitempty"`

	Policy ScalingPolicy `json:"scaling,omitempty"`

	Optional bool   `json:"optional,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Quantity is an amount with an optional unit. Amount is non-negative
// in any valid recipe; Unit is empty for unitless counts ("2 eggs").
type Quantity struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// Instruction is a two-case tagged variant mirroring Ingredient.
type Instruction struct {
	Text string `json:"text,omitempty"`

	Structured *StructuredInstruction `json:"structured,omitempty"`
}

// IsStructured reports which variant case this instruction carries.
func (s Instruction) IsStructured() bool {
	return s.Structured != nil
}

// StructuredInstruction is the parsed instruction record.
type StructuredInstruction struct {
	Step        string   `json:"step"`
	Minutes     int      `json:"minutes,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"` // referenced ingredient names
	Notes       string   `json:"notes,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// DisplayText returns the human-readable text for either variant case.
func (s Instruction) DisplayText() string {
	if s.Structured != nil {
		return s.Structured.Step
	}
	return s.Text
}
