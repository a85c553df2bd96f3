// Package source fetches canonical data documents for exercises.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/errors"
	"github.com/AndreyAkinshin/casegen/internal/schema"
	"github.com/AndreyAkinshin/casegen/internal/version"
)

// CanonicalDataFile is the file name of an exercise's canonical data.
const CanonicalDataFile = "canonical-data.json"

// Spec is a fetched canonical data document.
type Spec struct {
	// Path names where the document came from.
	Path     string
	Document *canonical.Document
	Warnings []string
}

// Source fetches canonical data by exercise name. A missing document is
// reported as a not found error (see errors.IsNotFound).
type Source interface {
	Fetch(exercise string) (*Spec, error)
}

// Options control how fetched documents are checked.
type Options struct {
	// Strict validates raw documents against the canonical data schema.
	Strict bool
}

// DirSource reads <Root>/exercises/<exercise>/canonical-data.json from a local
// problem-specifications checkout.
type DirSource struct {
	Root string
	Options
}

// NewDirSource creates a source over a problem-specifications checkout.
func NewDirSource(root string, opts Options) *DirSource {
	return &DirSource{Root: root, Options: opts}
}

// PathFor returns the canonical data path of an exercise.
func (s *DirSource) PathFor(exercise string) string {
	return filepath.Join(s.Root, "exercises", exercise, CanonicalDataFile)
}

// Fetch loads the canonical data of exercise.
func (s *DirSource) Fetch(exercise string) (*Spec, error) {
	return loadFile(s.PathFor(exercise), exercise, s.Options)
}

// FileSource reads one explicit canonical data file regardless of the
// requested exercise name.
type FileSource struct {
	Path string
	Options
}

// NewFileSource creates a source over a single file.
func NewFileSource(path string, opts Options) *FileSource {
	return &FileSource{Path: path, Options: opts}
}

// Fetch loads the file.
func (s *FileSource) Fetch(exercise string) (*Spec, error) {
	return loadFile(s.Path, exercise, s.Options)
}

// ReaderSource reads a document from a stream, such as stdin. The stream is
// consumed by the first Fetch.
type ReaderSource struct {
	Name string
	R    io.Reader
	Options
}

// Fetch reads and parses the stream.
func (s *ReaderSource) Fetch(exercise string) (*Spec, error) {
	data, err := io.ReadAll(s.R)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to read %s", s.Name))
	}
	return parse(s.Name, data, exercise, s.Options)
}

func loadFile(path, exercise string, opts Options) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("canonical data", path)
		}
		return nil, errors.Wrap(err, "failed to read canonical data")
	}
	return parse(path, data, exercise, opts)
}

func parse(path string, data []byte, exercise string, opts Options) (*Spec, error) {
	if opts.Strict {
		if err := schema.ValidateCanonicalData(data); err != nil {
			return nil, errors.Validation(path, err)
		}
	}

	doc, warnings, err := canonical.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Exercise != "" && exercise != "" && doc.Exercise != exercise {
		warnings = append(warnings, fmt.Sprintf("%s describes exercise %q, not %q", path, doc.Exercise, exercise))
	}
	if doc.Exercise == "" {
		doc.Exercise = exercise
	}
	if doc.Version != "" {
		if err := version.Validate(doc.Version); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: version %q is not a semantic version", path, doc.Version))
		}
	}

	return &Spec{Path: path, Document: doc, Warnings: warnings}, nil
}
