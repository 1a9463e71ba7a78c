package extract

import "testing"

const jsonldAndMicrodataPage = `
<html><head>
<script type="application/ld+json">{"@type":"Recipe","name":"From JSON-LD"}</script>
</head><body>
<div itemscope itemtype="https://schema.org/Recipe">
	<span itemprop="name">From Microdata</span>
	<li itemprop="recipeIngredient">1 thing</li>
</div>
</body></html>
`

func TestCoordinator_JSONLDIsAuthoritative(t *testing.T) {
	candidate, source, err := NewCoordinator(nil).Extract(jsonldAndMicrodataPage)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if source != SourceJSONLD {
		t.Errorf("Expected source %q, got %q", SourceJSONLD, source)
	}
	if candidate.String("name") != "From JSON-LD" {
		t.Errorf("Expected JSON-LD candidate, got %q", candidate.String("name"))
	}
}

func TestCoordinator_MicrodataFallback(t *testing.T) {
	page := `
	<html><head>
	<script type="application/ld+json">{"@type":"WebSite","name":"site"}</script>
	</head><body>
	<div itemscope itemtype="https://schema.org/Recipe">
		<span itemprop="name">Fallback Soup</span>
		<li itemprop="recipeIngredient">1 leek</li>
	</div>
	</body></html>
	`

	candidate, source, err := NewCoordinator(nil).Extract(page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if source != SourceMicrodata {
		t.Errorf("Expected source %q, got %q", SourceMicrodata, source)
	}
	if candidate.String("name") != "Fallback Soup" {
		t.Errorf("Expected microdata candidate, got %q", candidate.String("name"))
	}
}

func TestCoordinator_NotFoundIsNotAnError(t *testing.T) {
	candidate, source, err := NewCoordinator(nil).Extract(`<html><body><p>Just an article.</p></body></html>`)
	if err != nil {
		t.Fatalf("Expected no error for a page without recipe data, got %v", err)
	}
	if candidate != nil {
		t.Errorf("Expected nil candidate, got %v", candidate)
	}
	if source != SourceNone {
		t.Errorf("Expected source %q, got %q", SourceNone, source)
	}
}

func TestCoordinator_TraceObservesStages(t *testing.T) {
	var stages []string
	coordinator := NewCoordinator(func(stage, detail string) {
		stages = append(stages, stage)
	})

	if _, _, err := coordinator.Extract(jsonldAndMicrodataPage); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(stages) != 1 || stages[0] != "json-ld" {
		t.Errorf("Expected a single json-ld trace event, got %v", stages)
	}
}
