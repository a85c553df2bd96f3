package canonical

import (
	"fmt"

	"github.com/AndreyAkinshin/casegen/internal/errors"
)

// Document is a parsed canonical-data.json file.
type Document struct {
	Exercise string
	Version  string
	Comments []string
	Cases    []Node
}

// knownDocumentFields are the top-level keys understood by the generator.
var knownDocumentFields = map[string]bool{
	"exercise": true,
	"version":  true,
	"comments": true,
	"cases":    true,
}

// ParseDocument parses canonical data. The returned warnings list unknown
// top-level fields, which are ignored.
func ParseDocument(data []byte) (*Document, []string, error) {
	root, err := ParseValue(data)
	if err != nil {
		return nil, nil, errors.MalformedSpec("", "%v", err)
	}

	m, ok := root.(Map)
	if !ok {
		return nil, nil, errors.MalformedSpec("", "document root must be an object, got %s", KindName(root))
	}

	var warnings []string
	for _, key := range m.Keys() {
		if key == "$schema" {
			continue
		}
		if !knownDocumentFields[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	doc := &Document{}
	if doc.Exercise, err = optionalString(m, "exercise"); err != nil {
		return nil, nil, errors.MalformedSpec("", "%v", err)
	}
	if doc.Version, err = optionalString(m, "version"); err != nil {
		return nil, nil, errors.MalformedSpec("", "%v", err)
	}
	if doc.Comments, err = ParseComments(m); err != nil {
		return nil, nil, errors.MalformedSpec("", "%v", err)
	}

	cases, ok := m.Get("cases")
	if !ok {
		return nil, nil, errors.MalformedSpec("", `missing required field "cases"`)
	}
	if doc.Cases, err = ParseNodes(cases); err != nil {
		return nil, nil, err
	}

	return doc, warnings, nil
}
