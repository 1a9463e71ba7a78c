package llm

import (
	"strings"
	"testing"
)

func TestDecodeParsedIngredient_Valid(t *testing.T) {
	content := `{"name":"all-purpose flour","amount":2,"unit":"cups","prep":"sifted"}`

	got, err := decodeParsedIngredient(content, "2 cups all-purpose flour, sifted")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != "all-purpose flour" {
		t.Errorf("Expected name 'all-purpose flour', got %q", got.Name)
	}
	if got.Quantity == nil || got.Quantity.Amount != 2 || got.Quantity.Unit != "cups" {
		t.Errorf("Unexpected quantity %+v", got.Quantity)
	}
	if got.Prep != "sifted" {
		t.Errorf("Expected prep 'sifted', got %q", got.Prep)
	}
	if got.Item != "2 cups all-purpose flour, sifted" {
		t.Errorf("Expected original line preserved in Item, got %q", got.Item)
	}
}

func TestDecodeParsedIngredient_UnitlessCount(t *testing.T) {
	got, err := decodeParsedIngredient(`{"name":"eggs","amount":2}`, "2 eggs")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Quantity == nil || got.Quantity.Amount != 2 || got.Quantity.Unit != "" {
		t.Errorf("Expected unitless quantity of 2, got %+v", got.Quantity)
	}
}

func TestDecodeParsedIngredient_SkipDeclines(t *testing.T) {
	got, err := decodeParsedIngredient(`{"skip":true}`, "For the frosting:")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for a declined line, got %+v", got)
	}
}

func TestDecodeParsedIngredient_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "two cups of flour, probably"},
		{"missing name", `{"amount":2,"unit":"cups"}`},
		{"negative amount", `{"name":"flour","amount":-2}`},
	}

	for _, c := range cases {
		if _, err := decodeParsedIngredient(c.content, "x"); err == nil {
			t.Errorf("%s: expected rejection", c.name)
		}
	}
}

func TestDecodeParsedIngredient_StripsCodeFence(t *testing.T) {
	content := "```json\n{\"name\":\"butter\",\"amount\":1,\"unit\":\"stick\"}\n```"

	got, err := decodeParsedIngredient(content, "1 stick butter")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Name != "butter" {
		t.Errorf("Expected name 'butter', got %q", got.Name)
	}
}

func TestNewParser(t *testing.T) {
	if _, err := NewParser(Config{Provider: "openai"}); err == nil || !strings.Contains(err.Error(), "API key") {
		t.Errorf("Expected API key error, got %v", err)
	}
	if _, err := NewParser(Config{Provider: "openai", APIKey: "sk-test"}); err != nil {
		t.Errorf("Expected no error with an API key, got %v", err)
	}
	if _, err := NewParser(Config{Provider: "something-else"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
	if _, err := NewParser(Config{}); err == nil {
		t.Error("Expected error when no provider configured")
	}
}
