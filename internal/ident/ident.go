// Package ident derives identifier-safe tokens from free-form descriptions.
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the alphanumeric runs of a normalized identifier.
const Separator = "_"

// Normalize lowercases s, folds accented letters to their base form and
// collapses every run of characters outside [a-z0-9] into a single Separator.
// Leading and trailing separators are dropped. The result is empty when s has
// no ASCII letters or digits.
//
//	Normalize("Case One")        == "case_one"
//	Normalize("case-one")        == "case_one"
//	Normalize("Crème brûlée!")   == "creme_brulee"
func Normalize(s string) string {
	folded := cases.Lower(language.Und).String(stripMarks(s))

	var b strings.Builder
	pending := false
	for _, r := range folded {
		if isIdentRune(r) {
			if pending && b.Len() > 0 {
				b.WriteString(Separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// Camel converts s into an UpperCamelCase token built from the same runs that
// Normalize keeps. Each run's first letter is upper-cased; the rest of the run
// keeps its case, so "isValid" becomes "IsValid".
func Camel(s string) string {
	var b strings.Builder
	for _, word := range words(stripMarks(s)) {
		rs := []rune(word)
		b.WriteRune(unicode.ToUpper(rs[0]))
		b.WriteString(string(rs[1:]))
	}
	return b.String()
}

// words splits s into maximal runs of ASCII letters and digits.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !isIdentRune(unicode.ToLower(r))
	})
}

func isIdentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// stripMarks removes combining marks after canonical decomposition.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
