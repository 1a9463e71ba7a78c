package model

import "strings"

// Candidate is the transient, schema.org-shaped object produced by
// JSON-LD or microdata extraction, prior to conversion into the
// canonical Recipe shape. It is never persisted.
type Candidate map[string]interface{}

// String returns the candidate's value for key coerced to a trimmed
// string, or "" when absent or not string-like.
func (c Candidate) String(key string) string {
	switch v := c[key].(type) {
	case string:
		return strings.TrimSpace(v)
	}
	return ""
}

// Strings returns the candidate's value for key flattened to a string
// slice: a lone string becomes a one-element slice, arrays keep their
// order, non-string elements are skipped.
func (c Candidate) Strings(key string) []string {
	switch v := c[key].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

// Object returns a nested object value, or nil.
func (c Candidate) Object(key string) Candidate {
	if m, ok := c[key].(map[string]interface{}); ok {
		return Candidate(m)
	}
	return nil
}

// List returns a raw array value, or nil.
func (c Candidate) List(key string) []interface{} {
	if l, ok := c[key].([]interface{}); ok {
		return l
	}
	return nil
}

// HasType reports whether the candidate's @type field is the given
// type name or an array containing it.
func (c Candidate) HasType(name string) bool {
	switch t := c["@type"].(type) {
	case string:
		return t == name
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok && s == name {
				return true
			}
		}
	}
	return false
}
