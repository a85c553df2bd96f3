package generator

import (
	"strings"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/errors"
	"github.com/AndreyAkinshin/casegen/internal/ident"
)

// NormalizeIdentifier derives a test name from a description: lowercase,
// accents folded, every run of characters outside [a-z0-9] collapsed into a
// single underscore, no leading or trailing underscore.
func NormalizeIdentifier(description string) string {
	return ident.Normalize(description)
}

// Assemble renders the final document: the preamble, then one helper per
// registered property in first-seen order, then one test block per unit in
// walk order. Blocks are separated by a blank line and the text ends with a
// single newline.
func Assemble(units []TestUnit, reg *PropertyRegistry, preamble string, d dialect.Dialect) (string, error) {
	blocks := make([]string, 0, 1+reg.Len()+len(units))
	if p := strings.TrimSpace(preamble); p != "" {
		blocks = append(blocks, p)
	}
	for _, e := range reg.Entries() {
		blocks = append(blocks, strings.TrimSpace(e.Body))
	}

	seen := make(map[string]string, len(units))
	for _, u := range units {
		name := NormalizeIdentifier(u.Description)
		if name == "" {
			return "", errors.MalformedSpec(u.Description, "description does not yield a test name")
		}
		if first, ok := seen[name]; ok {
			return "", errors.MalformedSpec(u.Description,
				"test name %q is already used by case %q", name, first)
		}
		seen[name] = u.Description

		if !reg.Has(u.Property) {
			return "", errors.Newf("case %q refers to unregistered property %q", u.Description, u.Property)
		}

		blocks = append(blocks, strings.TrimSpace(d.TestBlock(dialect.Unit{
			Name:        name,
			Description: u.Description,
			Header:      u.Header,
			Comments:    u.Comments,
			Property:    u.Property,
			Skip:        u.Skip,
			Input:       u.InputLiteral,
			Expected:    u.ExpectedLiteral,
		})))
	}

	return strings.Join(blocks, "\n\n") + "\n", nil
}

// Generate walks cases and assembles the resulting document.
func Generate(cases []canonical.Node, preamble string, d dialect.Dialect) (string, error) {
	units, reg, err := Walk(cases, d)
	if err != nil {
		return "", err
	}
	return Assemble(units, reg, preamble, d)
}

// Placeholder renders the suite written when an exercise has no canonical
// data: the preamble followed by the dialect's placeholder body.
func Placeholder(preamble string, d dialect.Dialect) string {
	blocks := []string{strings.TrimSpace(d.Placeholder())}
	if p := strings.TrimSpace(preamble); p != "" {
		blocks = append([]string{p}, blocks...)
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
