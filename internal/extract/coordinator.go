package extract

import (
	"strings"

	"github.com/forageapp/forage/internal/model"
	"golang.org/x/net/html"
)

// Source identifies which extractor produced a candidate.
type Source string

const (
	SourceJSONLD    Source = "json-ld"
	SourceMicrodata Source = "microdata"
	SourceNone      Source = "none"
)

// Trace is an optional side-channel callback observing extraction
// stages. The extractors themselves never log.
type Trace func(stage string, detail string)

// Coordinator orchestrates the extractors: JSON-LD first, microdata
// as fallback. A page with multiple Recipe payloads yields only the
// first in document order; multi-recipe pages are out of scope.
type Coordinator struct {
	trace Trace
}

// NewCoordinator creates a coordinator. trace may be nil.
func NewCoordinator(trace Trace) *Coordinator {
	return &Coordinator{trace: trace}
}

// Extract scans raw HTML for an embedded recipe and returns the raw
// schema.org-shaped candidate plus the source that produced it.
// JSON-LD is authoritative when present, even if incomplete: a JSON-LD
// hit suppresses the microdata pass entirely. Absence of recipe data
// is an expected outcome, returned as (nil, SourceNone, nil); the only
// error is an HTML document too broken to tokenize, which the parser
// almost never reports.
func (c *Coordinator) Extract(rawHTML string) (model.Candidate, Source, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, SourceNone, err
	}

	if candidate := JSONLD(doc); candidate != nil {
		c.emit("json-ld", "recipe payload found")
		return candidate, SourceJSONLD, nil
	}
	c.emit("json-ld", "no recipe payload")

	if candidate := Microdata(doc); candidate != nil {
		c.emit("microdata", "recipe tree found")
		return candidate, SourceMicrodata, nil
	}
	c.emit("microdata", "no recipe tree")

	return nil, SourceNone, nil
}

func (c *Coordinator) emit(stage, detail string) {
	if c.trace != nil {
		c.trace(stage, detail)
	}
}
