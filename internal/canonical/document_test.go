package canonical

import (
	"strings"
	"testing"

	"github.com/AndreyAkinshin/casegen/internal/errors"
)

func TestParseDocument_Valid(t *testing.T) {
	data := `{
		"exercise": "book-store",
		"version": "1.4.0",
		"comments": ["Return the total basket price."],
		"cases": [
			{"description": "Only a single book", "property": "total", "input": {"basket": [1]}, "expected": 800}
		]
	}`

	doc, warnings, err := ParseDocument([]byte(data))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if doc.Exercise != "book-store" {
		t.Errorf("Exercise = %q, want %q", doc.Exercise, "book-store")
	}
	if doc.Version != "1.4.0" {
		t.Errorf("Version = %q, want %q", doc.Version, "1.4.0")
	}
	if len(doc.Comments) != 1 {
		t.Errorf("len(Comments) = %d, want 1", len(doc.Comments))
	}
	if len(doc.Cases) != 1 {
		t.Errorf("len(Cases) = %d, want 1", len(doc.Cases))
	}
}

func TestParseDocument_EmptyCasesIsValid(t *testing.T) {
	doc, _, err := ParseDocument([]byte(`{"exercise": "x", "cases": []}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(doc.Cases) != 0 {
		t.Errorf("len(Cases) = %d, want 0", len(doc.Cases))
	}
}

func TestParseDocument_UnknownFieldsWarn(t *testing.T) {
	_, warnings, err := ParseDocument([]byte(`{"$schema": "x", "exercise": "x", "author": "me", "cases": []}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if !strings.Contains(warnings[0], `"author"`) {
		t.Errorf("warning = %q, want it to mention author", warnings[0])
	}
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"invalid JSON", `{"cases": [}`, "invalid JSON"},
		{"root not object", `[]`, "document root must be an object"},
		{"missing cases", `{"exercise": "x"}`, `missing required field "cases"`},
		{"cases not array", `{"cases": 1}`, `"cases" must be an array`},
		{"exercise not string", `{"exercise": 1, "cases": []}`, `"exercise" must be a string`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseDocument([]byte(tt.input))
			if err == nil {
				t.Fatal("ParseDocument() expected error")
			}
			if !errors.IsMalformedSpec(err) {
				t.Errorf("error = %v, want malformed spec", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
