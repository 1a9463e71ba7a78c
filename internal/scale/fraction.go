// Package scale implements quantity scaling and human-friendly
// formatting for recipe ingredients. Everything here is pure: no I/O,
// no state, same input always yields the same output.
package scale

import (
	"math"
	"strconv"
	"strings"
)

// fractionGlyphs maps common culinary fractions to their glyphs, in
// ascending order of value.
var fractionGlyphs = []struct {
	value float64
	glyph string
}{
	{1.0 / 8.0, "⅛"},
	{1.0 / 4.0, "¼"},
	{1.0 / 3.0, "⅓"},
	{3.0 / 8.0, "⅜"},
	{1.0 / 2.0, "½"},
	{5.0 / 8.0, "⅝"},
	{2.0 / 3.0, "⅔"},
	{3.0 / 4.0, "¾"},
	{7.0 / 8.0, "⅞"},
}

// fractionTolerance is how close the fractional part must be to a
// glyph value to render as that glyph.
const fractionTolerance = 0.02

// FormatAmount renders a decimal amount as a human-friendly string,
// preferring common culinary fractions: the fractional part snaps to
// the nearest glyph within tolerance ("1 ½", "⅓"), otherwise the
// amount is rendered with at most one decimal digit ("2.1", "3").
// Always returns a string; negative input is malformed and falls
// through to the decimal form.
func FormatAmount(amount float64) string {
	if amount >= 0 {
		whole := math.Floor(amount)
		frac := amount - whole

		for _, f := range fractionGlyphs {
			if math.Abs(frac-f.value) <= fractionTolerance {
				if whole == 0 {
					return f.glyph
				}
				return strconv.FormatFloat(whole, 'f', 0, 64) + " " + f.glyph
			}
		}
	}

	// Decimal fallback: one digit, trailing ".0" suppressed.
	s := strconv.FormatFloat(amount, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
