// Package dialect renders generated test suites in a specific target language.
package dialect

import (
	"strings"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
)

// Meta describes the suite being generated. It feeds the preamble only.
type Meta struct {
	Exercise string
	Version  string   // canonical data version, may be empty
	Comments []string // top-level comments of the canonical data
	// Attribution is a resolved one-line note naming the generator.
	Attribution string
	// SourceURL points at the canonical data the suite was generated from.
	SourceURL string
	// CaseCount is the number of test units that will follow the preamble.
	CaseCount int
}

// Unit is a fully resolved test unit, ready to be rendered as one test block.
type Unit struct {
	Name        string   // normalized identifier, unique within the suite
	Description string   // original description
	Header      []string // group marker lines emitted before the unit, if any
	Comments    []string // optional note and comments of the case
	Property    string
	Skip        bool
	Input       string // rendered literal
	Expected    string // rendered literal
}

// Dialect defines how a target language spells each part of a test suite.
type Dialect interface {
	// Name returns the registry name of the dialect.
	Name() string
	// FileName returns the conventional test file name for an exercise.
	FileName(exercise string) string
	// Preamble returns the header of the suite: attribution, package and imports.
	Preamble(meta Meta) string
	// Placeholder returns the body written when no canonical data exists.
	Placeholder() string
	// HelperName returns the identifier of the helper for a property.
	HelperName(property string) string
	// Helper returns the helper body for a property. It depends on the
	// property name only.
	Helper(property string) string
	// Literal renders a value as source text. Rendering is deterministic.
	Literal(v canonical.Value) string
	// TestBlock renders one test unit.
	TestBlock(u Unit) string
}

// commentLines prefixes every line of text with prefix. Embedded newlines
// start new comment lines; empty lines keep the bare prefix.
func commentLines(prefix string, text ...string) []string {
	var out []string
	for _, t := range text {
		for _, line := range strings.Split(t, "\n") {
			line = strings.TrimRight(line, " \t\r")
			if line == "" {
				out = append(out, prefix)
				continue
			}
			out = append(out, prefix+" "+line)
		}
	}
	return out
}

// docBlock joins the header, description and comments of a unit into comment
// lines, separating the three parts with a bare prefix line.
func docBlock(prefix string, u Unit) []string {
	var lines []string
	if len(u.Header) > 0 {
		lines = append(lines, commentLines(prefix, u.Header...)...)
		lines = append(lines, prefix)
	}
	lines = append(lines, commentLines(prefix, u.Description)...)
	if len(u.Comments) > 0 {
		lines = append(lines, prefix)
		lines = append(lines, commentLines(prefix, u.Comments...)...)
	}
	return lines
}
