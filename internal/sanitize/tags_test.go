package sanitize

import (
	"reflect"
	"testing"

	"github.com/forageapp/forage/internal/model"
)

func TestTags_DropsIngredientDerived(t *testing.T) {
	tags := []string{"chicken", "dinner", "easy"}
	ingredients := []model.Ingredient{model.FreeText("2 lbs chicken breast")}

	got := Tags(tags, ingredients)
	want := []string{"dinner", "easy"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTags_DropsShortTags(t *testing.T) {
	got := Tags([]string{"ok", "a", "hearty"}, nil)
	want := []string{"hearty"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTags_NumericTokensNotDerived(t *testing.T) {
	// Pure-numeric ingredient tokens are discarded during derivation,
	// so a numeric tag survives the ingredient check
	tags := []string{"350", "pasta"}
	ingredients := []model.Ingredient{model.FreeText("350 grams pasta")}

	got := Tags(tags, ingredients)
	want := []string{"350"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTags_StructuredUsesName(t *testing.T) {
	tags := []string{"flour", "baking"}
	ingredients := []model.Ingredient{{Structured: &model.StructuredIngredient{
		Item: "2 cups all-purpose flour",
		Name: "flour",
	}}}

	got := Tags(tags, ingredients)
	want := []string{"baking"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTags_StructuredFallsBackToItem(t *testing.T) {
	tags := []string{"butter", "holiday"}
	ingredients := []model.Ingredient{{Structured: &model.StructuredIngredient{
		Item: "1 stick butter, softened",
	}}}

	got := Tags(tags, ingredients)
	want := []string{"holiday"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTags_NormalizesBeforeComparing(t *testing.T) {
	tags := []string{"Chicken!", "Dinner"}
	ingredients := []model.Ingredient{model.FreeText("1 whole chicken")}

	got := Tags(tags, ingredients)
	want := []string{"Dinner"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTags_EmptiedResultIsNil(t *testing.T) {
	got := Tags([]string{"chicken"}, []model.Ingredient{model.FreeText("1 chicken thigh")})
	if got != nil {
		t.Errorf("Expected nil when filtering empties the sequence, got %v", got)
	}
}

func TestTags_DropsDuplicates(t *testing.T) {
	got := Tags([]string{"dinner", "Dinner", "easy"}, nil)
	want := []string{"dinner", "easy"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTags_Idempotent(t *testing.T) {
	tags := []string{"chicken", "dinner", "easy"}
	ingredients := []model.Ingredient{model.FreeText("2 lbs chicken breast")}

	once := Tags(tags, ingredients)
	twice := Tags(once, ingredients)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Expected idempotent result, got %v then %v", once, twice)
	}
}
