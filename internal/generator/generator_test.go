package generator

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/errors"
)

func parseCases(t *testing.T, data string) []canonical.Node {
	t.Helper()
	doc, _, err := canonical.ParseDocument([]byte(data))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	return doc.Cases
}

const rustPreamble = "//! Tests for demo\n\nuse demo::*;\n"

// An empty cases list yields the preamble only.
func TestGenerate_EmptyCases_PreambleOnly(t *testing.T) {
	d := dialect.NewRust(dialect.RustOptions{})
	cases := parseCases(t, `{"exercise": "demo", "cases": []}`)

	units, reg, err := Walk(cases, d)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(units) != 0 || reg.Len() != 0 {
		t.Errorf("Walk() = %d units, %d properties; want 0, 0", len(units), reg.Len())
	}

	got, err := Generate(cases, rustPreamble, d)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != rustPreamble {
		t.Errorf("Generate() = %q, want %q", got, rustPreamble)
	}
}

// A single case is enabled and gets its own helper.
func TestGenerate_SingleCase(t *testing.T) {
	d := dialect.NewRust(dialect.RustOptions{})
	cases := parseCases(t, `{"exercise": "demo", "cases": [
		{"description": "only one", "property": "total", "input": 1, "expected": 800}
	]}`)

	units, reg, err := Walk(cases, d)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("Walk() returned %d units, want 1", len(units))
	}
	if units[0].Skip {
		t.Error("first unit is skipped")
	}
	if diff := cmp.Diff([]string{"total"}, propertyNames(reg)); diff != "" {
		t.Errorf("registered properties mismatch (-want +got):\n%s", diff)
	}

	got, err := Assemble(units, reg, rustPreamble, d)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	want := strings.Join([]string{
		strings.TrimSpace(rustPreamble),
		strings.TrimSpace(d.Helper("total")),
		"#[test]\n/// only one\nfn test_only_one() {\n    process_total_case(1, 800);\n}",
	}, "\n\n") + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble() mismatch (-want +got):\n%s", diff)
	}
}

// The cases of a group share one helper and only the first runs.
func TestGenerate_GroupSharesHelper(t *testing.T) {
	d := dialect.NewRust(dialect.RustOptions{})
	cases := parseCases(t, `{"exercise": "demo", "cases": [
		{"description": "G", "cases": [
			{"description": "c1", "property": "p", "input": 1, "expected": 2},
			{"description": "c2", "property": "p", "input": 3, "expected": 4}
		]}
	]}`)

	got, err := Generate(cases, rustPreamble, d)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := strings.Join([]string{
		strings.TrimSpace(rustPreamble),
		strings.TrimSpace(d.Helper("p")),
		"#[test]\n/// G\n///\n/// c1\nfn test_c1() {\n    process_p_case(1, 2);\n}",
		"#[test]\n#[ignore]\n/// c2\nfn test_c2() {\n    process_p_case(3, 4);\n}",
	}, "\n\n") + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

// Descriptions that normalize to the same name are rejected.
func TestGenerate_CollidingNames_MalformedSpec(t *testing.T) {
	cases := parseCases(t, `{"exercise": "demo", "cases": [
		{"description": "Case One", "property": "p", "input": 1, "expected": 1},
		{"description": "case-one", "property": "p", "input": 2, "expected": 2}
	]}`)

	_, err := Generate(cases, "", dialect.NewGo())
	if !errors.IsMalformedSpec(err) {
		t.Fatalf("Generate() error = %v, want malformed spec", err)
	}
	for _, want := range []string{`"case_one"`, `"Case One"`, `"case-one"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err.Error(), want)
		}
	}
}

func TestWalk_MalformedSpec(t *testing.T) {
	tests := []struct {
		name string
		json string
		node string
	}{
		{
			name: "missing property",
			json: `{"cases": [{"description": "no prop", "input": 1, "expected": 1}]}`,
			node: "no prop",
		},
		{
			name: "missing description",
			json: `{"cases": [{"property": "p", "input": 1, "expected": 1}]}`,
			node: "p",
		},
		{
			name: "group without description",
			json: `{"cases": [{"cases": [{"description": "c", "property": "p"}]}]}`,
		},
		{
			name: "nested group",
			json: `{"cases": [{"description": "outer", "cases": [
				{"description": "inner", "cases": []}
			]}]}`,
			node: "inner",
		},
		{
			name: "property without identifier characters",
			json: `{"cases": [{"description": "c", "property": "???"}]}`,
			node: "???",
		},
		{
			name: "properties sharing a helper",
			json: `{"cases": [
				{"description": "a", "property": "isValid"},
				{"description": "b", "property": "is_valid"}
			]}`,
			node: "is_valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Walk(parseCases(t, tt.json), dialect.NewGo())
			if !errors.IsMalformedSpec(err) {
				t.Fatalf("Walk() error = %v, want malformed spec", err)
			}
			var ce *errors.CasegenError
			if !asCasegenError(err, &ce) {
				t.Fatalf("Walk() error is %T, want *errors.CasegenError", err)
			}
			if ce.Node != tt.node {
				t.Errorf("error node = %q, want %q", ce.Node, tt.node)
			}
		})
	}
}

func TestWalk_GroupHeaderOnFirstChildOnly(t *testing.T) {
	cases := parseCases(t, `{"cases": [
		{"description": "plain", "property": "p"},
		{"description": "Group", "comments": ["shared note"], "optional": "extra", "cases": [
			{"description": "first", "property": "p"},
			{"description": "second", "property": "q", "comments": "own note"}
		]},
		{"description": "Empty group", "cases": []},
		{"description": "after", "property": "q"}
	]}`)

	units, reg, err := Walk(cases, dialect.NewGo())
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	type summary struct {
		Description string
		Header      []string
		Comments    []string
		Position    int
		Skip        bool
	}
	var got []summary
	for _, u := range units {
		got = append(got, summary{u.Description, u.Header, u.Comments, u.Position, u.Skip})
	}
	want := []summary{
		{"plain", nil, nil, 0, false},
		{"first", []string{"Group", "Optional: extra", "shared note"}, nil, 1, true},
		{"second", nil, []string{"own note"}, 2, true},
		{"after", nil, nil, 3, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"p", "q"}, propertyNames(reg)); diff != "" {
		t.Errorf("registry order mismatch (-want +got):\n%s", diff)
	}
}

func TestMaterialize(t *testing.T) {
	d := dialect.NewGo()
	c := &canonical.Case{
		Description: "basket",
		Property:    "total",
		Optional:    "big-baskets",
		Comments:    []string{"prices in cents"},
		Input:       canonical.Map{{Key: "basket", Value: canonical.Seq{canonical.Int(1), canonical.Int(2)}}},
	}

	u, err := Materialize(c, 3, d)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if !u.Skip || u.Position != 3 {
		t.Errorf("Materialize() Skip = %v, Position = %d; want true, 3", u.Skip, u.Position)
	}
	if u.InputLiteral != `map[string]any{"basket": []any{1, 2}}` {
		t.Errorf("InputLiteral = %s", u.InputLiteral)
	}
	if u.ExpectedLiteral != "nil" {
		t.Errorf("ExpectedLiteral = %s, want nil", u.ExpectedLiteral)
	}
	if diff := cmp.Diff([]string{"Optional: big-baskets", "prices in cents"}, u.Comments); diff != "" {
		t.Errorf("Comments mismatch (-want +got):\n%s", diff)
	}

	u, err = Materialize(c, 0, d)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if u.Skip {
		t.Error("Materialize() at position 0 is skipped")
	}
}

func TestAssemble_EmptyDescriptionName(t *testing.T) {
	d := dialect.NewGo()
	reg := NewPropertyRegistry(d)
	if _, err := reg.Register("p"); err != nil {
		t.Fatal(err)
	}
	units := []TestUnit{{Description: "!!!", Property: "p", InputLiteral: "nil", ExpectedLiteral: "nil"}}

	if _, err := Assemble(units, reg, "", d); !errors.IsMalformedSpec(err) {
		t.Errorf("Assemble() error = %v, want malformed spec", err)
	}
}

func TestAssemble_UnregisteredProperty(t *testing.T) {
	d := dialect.NewGo()
	units := []TestUnit{{Description: "x", Property: "p", InputLiteral: "nil", ExpectedLiteral: "nil"}}

	if _, err := Assemble(units, NewPropertyRegistry(d), "", d); err == nil {
		t.Error("Assemble() error = nil, want error for unregistered property")
	}
}

func TestPlaceholder(t *testing.T) {
	d := dialect.NewRust(dialect.RustOptions{})
	want := "//! Tests for demo\n\nuse demo::*;\n\n// Add your tests here\n"
	if got := Placeholder(rustPreamble, d); got != want {
		t.Errorf("Placeholder() = %q, want %q", got, want)
	}
	if got := Placeholder("", d); got != "// Add your tests here\n" {
		t.Errorf("Placeholder() without preamble = %q", got)
	}
}

func propertyNames(reg *PropertyRegistry) []string {
	var names []string
	for _, e := range reg.Entries() {
		names = append(names, e.Property)
	}
	return names
}

func asCasegenError(err error, target **errors.CasegenError) bool {
	return stderrors.As(err, target)
}
