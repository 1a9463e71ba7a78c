package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/forageapp/forage/internal/model"
)

func validRecipe() model.Recipe {
	return model.Recipe{
		Name:        "Beef Stew",
		Ingredients: []model.Ingredient{model.FreeText("2 lbs beef chuck")},
	}
}

func TestRecipe_Valid(t *testing.T) {
	if err := Recipe(validRecipe()); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestRecipe_MissingName(t *testing.T) {
	r := validRecipe()
	r.Name = "  "

	err := Recipe(r)
	if err == nil {
		t.Fatal("Expected rejection for missing name")
	}
	if !errors.Is(err, ErrInvalidRecipe) {
		t.Errorf("Expected ErrInvalidRecipe, got %v", err)
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("Expected name violation in message, got %q", err.Error())
	}
}

func TestRecipe_NoIngredients(t *testing.T) {
	r := validRecipe()
	r.Ingredients = nil

	err := Recipe(r)
	if err == nil {
		t.Fatal("Expected rejection for zero ingredients")
	}
	if !strings.Contains(err.Error(), "ingredient") {
		t.Errorf("Expected ingredient violation in message, got %q", err.Error())
	}
}

func TestRecipe_CollectsAllViolations(t *testing.T) {
	err := Recipe(model.Recipe{})
	if err == nil {
		t.Fatal("Expected rejection")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "ingredient") {
		t.Errorf("Expected both violations reported, got %q", msg)
	}
}

func TestRecipe_NegativeQuantity(t *testing.T) {
	r := validRecipe()
	r.Ingredients = append(r.Ingredients, model.Ingredient{Structured: &model.StructuredIngredient{
		Item:     "-1 cup flour",
		Quantity: &model.Quantity{Amount: -1, Unit: "cup"},
	}})

	err := Recipe(r)
	if err == nil {
		t.Fatal("Expected rejection for negative amount")
	}
	if !strings.Contains(err.Error(), "negative amount") {
		t.Errorf("Expected negative amount violation, got %q", err.Error())
	}
}

func TestRecipe_UnitlessQuantityIsValid(t *testing.T) {
	r := validRecipe()
	r.Ingredients = []model.Ingredient{{Structured: &model.StructuredIngredient{
		Item:     "2 eggs",
		Quantity: &model.Quantity{Amount: 2},
		Name:     "eggs",
	}}}

	if err := Recipe(r); err != nil {
		t.Errorf("Expected unitless counts to be valid, got %v", err)
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		result ImageResult
		want   bool
	}{
		{ImageResult{StatusCode: 503}, true},
		{ImageResult{StatusCode: 429}, true},
		{ImageResult{StatusCode: 404}, false},
		{ImageResult{StatusCode: 200, IsAccessible: true}, false},
		{ImageResult{Error: "request failed: context deadline exceeded (timeout)"}, true},
		{ImageResult{Error: "request failed: connection refused"}, true},
		{ImageResult{Error: "no such host"}, false},
	}

	for _, c := range cases {
		if got := isRetryable(c.result); got != c.want {
			t.Errorf("isRetryable(%+v): expected %v, got %v", c.result, c.want, got)
		}
	}
}
