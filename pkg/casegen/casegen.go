package casegen

import (
	"bytes"
	"fmt"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/config"
	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/errors"
	"github.com/AndreyAkinshin/casegen/internal/generator"
	"github.com/AndreyAkinshin/casegen/internal/source"
)

// Options select how Generate renders a suite.
type Options struct {
	// Dialect names the target language. Empty means "rust".
	Dialect string
	// Exercise names the exercise when the document does not.
	Exercise string
	// Maplit renders Rust mappings with the maplit crate.
	Maplit bool
	// Strict validates the document against the canonical data schema first.
	Strict bool
	// Attribution is written verbatim into the preamble when set.
	Attribution string
}

// Generate renders the test suite of one canonical-data.json document.
// The exercise name comes from the document, or from opts.Exercise when the
// document has none, and must be a lowercase slug such as "two-fer".
// Malformed documents are reported with IsMalformedSpec.
func Generate(data []byte, opts Options) (string, error) {
	name := opts.Dialect
	if name == "" {
		name = "rust"
	}
	registry := dialect.NewRegistry(dialect.Options{Maplit: opts.Maplit})
	d := registry.Get(name)
	if d == nil {
		return "", fmt.Errorf("unknown dialect %q", name)
	}

	src := &source.ReaderSource{
		Name:    "canonical data",
		R:       bytes.NewReader(data),
		Options: source.Options{Strict: opts.Strict},
	}
	spec, err := src.Fetch(opts.Exercise)
	if err != nil {
		return "", err
	}

	doc := spec.Document
	if doc.Exercise == "" {
		return "", errors.Config("the document names no exercise; set Options.Exercise")
	}
	if err := config.ValidateExerciseName(doc.Exercise); err != nil {
		return "", errors.Configf("invalid exercise name %q: %v", doc.Exercise, err)
	}
	meta := dialect.Meta{
		Exercise:    doc.Exercise,
		Version:     doc.Version,
		Comments:    doc.Comments,
		Attribution: opts.Attribution,
		CaseCount:   canonical.CountCases(doc.Cases),
	}
	return generator.Generate(doc.Cases, d.Preamble(meta), d)
}

// IsMalformedSpec reports whether err describes a structural problem of the
// canonical data, such as a case without a description or two cases whose
// descriptions produce the same test name.
func IsMalformedSpec(err error) bool {
	return errors.IsMalformedSpec(err)
}
