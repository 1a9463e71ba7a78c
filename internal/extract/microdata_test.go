package extract

import (
	"reflect"
	"testing"
)

func TestMicrodata_BasicRecipe(t *testing.T) {
	doc := parse(t, `
	<html><body>
	<div itemscope itemtype="https://schema.org/Recipe">
		<h1 itemprop="name">Beef Stew</h1>
		<p itemprop="description">A slow-cooked classic.</p>
		<ul>
			<li itemprop="recipeIngredient">2 lbs beef chuck</li>
			<li itemprop="recipeIngredient">4 carrots</li>
			<li itemprop="recipeIngredient">1 onion</li>
		</ul>
	</div>
	</body></html>
	`)

	got := Microdata(doc)
	if got == nil {
		t.Fatal("Expected a candidate, got nil")
	}
	if got.String("name") != "Beef Stew" {
		t.Errorf("Expected name 'Beef Stew', got %q", got.String("name"))
	}

	// Ingredients must preserve document order
	want := []string{"2 lbs beef chuck", "4 carrots", "1 onion"}
	if !reflect.DeepEqual(got.Strings("recipeIngredient"), want) {
		t.Errorf("Expected ingredients %v, got %v", want, got.Strings("recipeIngredient"))
	}
}

func TestMicrodata_ValuePrecedence(t *testing.T) {
	doc := parse(t, `
	<html><body>
	<div itemscope itemtype="http://schema.org/Recipe">
		<meta itemprop="name" content="From Content Attr">Visible text</meta>
		<a itemprop="author" href="/chefs/ada">Ada</a>
		<img itemprop="image" src="/stew.jpg">
		<span itemprop="recipeYield">6 servings</span>
		<li itemprop="recipeIngredient">1 potato</li>
	</div>
	</body></html>
	`)

	got := Microdata(doc)
	if got == nil {
		t.Fatal("Expected a candidate, got nil")
	}
	if got.String("name") != "From Content Attr" {
		t.Errorf("Expected content attribute to win, got %q", got.String("name"))
	}
	if got.String("author") != "/chefs/ada" {
		t.Errorf("Expected href value, got %q", got.String("author"))
	}
	if got.String("image") != "/stew.jpg" {
		t.Errorf("Expected src value, got %q", got.String("image"))
	}
	if got.String("recipeYield") != "6 servings" {
		t.Errorf("Expected text content, got %q", got.String("recipeYield"))
	}
}

func TestMicrodata_InstructionsPreferNestedText(t *testing.T) {
	doc := parse(t, `
	<html><body>
	<div itemscope itemtype="https://schema.org/Recipe">
		<span itemprop="name">Toast</span>
		<li itemprop="recipeIngredient">2 slices bread</li>
		<div itemprop="recipeInstructions" itemscope itemtype="https://schema.org/HowToStep">
			<span itemprop="position">1</span>
			<span itemprop="text">Toast the bread.</span>
		</div>
		<div itemprop="recipeInstructions">Butter generously.</div>
	</div>
	</body></html>
	`)

	got := Microdata(doc)
	if got == nil {
		t.Fatal("Expected a candidate, got nil")
	}

	want := []string{"Toast the bread.", "Butter generously."}
	if !reflect.DeepEqual(got.Strings("recipeInstructions"), want) {
		t.Errorf("Expected instructions %v, got %v", want, got.Strings("recipeInstructions"))
	}
}

func TestMicrodata_EmptyShellIsNoMatch(t *testing.T) {
	doc := parse(t, `
	<html><body>
	<div itemscope itemtype="https://schema.org/Recipe"></div>
	</body></html>
	`)

	if got := Microdata(doc); got != nil {
		t.Errorf("Expected nil for an itemscope with no extractable properties, got %v", got)
	}
}

func TestMicrodata_IngredientsAloneSuffice(t *testing.T) {
	doc := parse(t, `
	<html><body>
	<div itemscope itemtype="https://schema.org/Recipe">
		<li itemprop="recipeIngredient">1 egg</li>
	</div>
	</body></html>
	`)

	if got := Microdata(doc); got == nil {
		t.Error("Expected a candidate with ingredients but no name")
	}
}

func TestMicrodata_NoRecipeScope(t *testing.T) {
	doc := parse(t, `
	<html><body>
	<div itemscope itemtype="https://schema.org/Article">
		<span itemprop="name">Not a recipe</span>
	</div>
	</body></html>
	`)

	if got := Microdata(doc); got != nil {
		t.Errorf("Expected nil for non-Recipe itemtype, got %v", got)
	}
}
