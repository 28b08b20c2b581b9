// Package formula provides chemical-formula string utilities.
package formula

import (
	"regexp"
	"strings"
)

var elementPattern = regexp.MustCompile(`[A-Z][a-z]?`)

// subscriptDigits maps ASCII digits to their Unicode subscript forms.
var subscriptDigits = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
}

// Elements extracts the element symbols appearing in a chemical formula,
// in order of first appearance with duplicates removed.
func Elements(chemFormula string) []string {
	matches := elementPattern.FindAllString(chemFormula, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	elements := make([]string, 0, len(matches))
	for _, element := range matches {
		if !seen[element] {
			seen[element] = true
			elements = append(elements, element)
		}
	}
	return elements
}

// Subscript formats a chemical formula for display by converting stoichiometry
// digits to Unicode subscripts (e.g. "Fe2O3" -> "Fe₂O₃").
func Subscript(chemFormula string) string {
	var sb strings.Builder
	sb.Grow(len(chemFormula))
	for _, r := range chemFormula {
		if sub, ok := subscriptDigits[r]; ok {
			sb.WriteRune(sub)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
