package dialect

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/ident"
)

// GoSkipMessage is the argument of the t.Skip call that disables a generated test.
const GoSkipMessage = "remove this line to enable the test"

// goNegativeZero evaluates to negative zero without importing math.
const goNegativeZero = "func() float64 { zero := 0.0; return -zero }()"

// GoDialect renders suites as Go test files using the standard testing package.
type GoDialect struct{}

// NewGo creates the Go dialect.
func NewGo() *GoDialect {
	return &GoDialect{}
}

// Name returns the dialect name.
func (d *GoDialect) Name() string {
	return "go"
}

// FileName returns "<exercise>_test.go" with dashes replaced by underscores.
func (d *GoDialect) FileName(exercise string) string {
	return strings.ReplaceAll(exercise, "-", "_") + "_test.go"
}

// PackageName returns the package clause name for an exercise's tests.
func (d *GoDialect) PackageName(exercise string) string {
	name := strings.ReplaceAll(ident.Normalize(exercise), ident.Separator, "")
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "exercise" + name
	}
	return name + "_test"
}

// Preamble renders the file comment, package clause and imports.
func (d *GoDialect) Preamble(meta Meta) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("// Tests for %s.", meta.Exercise))
	if meta.Attribution != "" {
		lines = append(lines, "//")
		lines = append(lines, commentLines("//", meta.Attribution)...)
	}
	if meta.Version != "" {
		lines = append(lines, "//", fmt.Sprintf("// Canonical data version: %s", meta.Version))
	}
	if meta.SourceURL != "" {
		lines = append(lines, fmt.Sprintf("// Canonical data: %s", meta.SourceURL))
	}
	if len(meta.Comments) > 0 {
		lines = append(lines, "//")
		lines = append(lines, commentLines("//", meta.Comments...)...)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "package %s\n", d.PackageName(meta.Exercise))
	if meta.CaseCount > 0 {
		b.WriteString("\nimport \"testing\"\n")
	}
	return b.String()
}

// Placeholder returns the comment written when no canonical data exists.
func (d *GoDialect) Placeholder() string {
	return "// Add your tests here.\n"
}

// HelperName returns process<Property>Case.
func (d *GoDialect) HelperName(property string) string {
	return "process" + ident.Camel(property) + "Case"
}

// Helper renders the shared helper for a property.
func (d *GoDialect) Helper(property string) string {
	name := d.HelperName(property)
	call := ident.Camel(property)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s runs a single test case for the property %q.\n", name, property)
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// Every case of the %q property calls this function. Replace the body\n", property)
	b.WriteString("// with a call into the solution and give input and expected concrete\n")
	b.WriteString("// types, for example:\n")
	b.WriteString("//\n")
	fmt.Fprintf(&b, "//\tif got := %s(input); got != expected {\n", call)
	fmt.Fprintf(&b, "//\t\tt.Fatalf(\"%s(%%v) = %%v, want %%v\", input, got, expected)\n", call)
	b.WriteString("//\t}\n")
	fmt.Fprintf(&b, "func %s(t *testing.T, input, expected any) {\n", name)
	b.WriteString("\tt.Helper()\n")
	fmt.Fprintf(&b, "\tt.Fatalf(\"property %%q is not implemented (input: %%v, expected: %%v)\", %q, input, expected)\n", property)
	b.WriteString("}\n")
	return b.String()
}

// Literal renders v as a Go expression assignable to any.
func (d *GoDialect) Literal(v canonical.Value) string {
	var b strings.Builder
	d.writeLiteral(&b, v)
	return b.String()
}

func (d *GoDialect) writeLiteral(b *strings.Builder, v canonical.Value) {
	switch x := v.(type) {
	case canonical.Bool:
		b.WriteString(strconv.FormatBool(bool(x)))
	case canonical.Int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case canonical.Uint:
		fmt.Fprintf(b, "uint64(%d)", uint64(x))
	case canonical.Float:
		if x == 0 && math.Signbit(float64(x)) {
			// -0.0 is a constant expression equal to +0 in Go.
			b.WriteString(goNegativeZero)
			return
		}
		b.WriteString(formatFloat(float64(x)))
	case canonical.String:
		b.WriteString(strconv.Quote(string(x)))
	case canonical.Seq:
		b.WriteString("[]any{")
		for i, item := range x {
			if i > 0 {
				b.WriteString(", ")
			}
			d.writeLiteral(b, item)
		}
		b.WriteString("}")
	case canonical.Map:
		b.WriteString("map[string]any{")
		for i, e := range x {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(e.Key))
			b.WriteString(": ")
			d.writeLiteral(b, e.Value)
		}
		b.WriteString("}")
	default:
		b.WriteString("nil")
	}
}

// TestBlock renders a unit as a top-level Test function.
func (d *GoDialect) TestBlock(u Unit) string {
	var b strings.Builder
	for _, line := range docBlock("//", u) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "func Test_%s(t *testing.T) {\n", u.Name)
	if u.Skip {
		fmt.Fprintf(&b, "\tt.Skip(%q)\n", GoSkipMessage)
	}
	fmt.Fprintf(&b, "\t%s(t, %s, %s)\n", d.HelperName(u.Property), u.Input, u.Expected)
	b.WriteString("}\n")
	return b.String()
}

// formatFloat returns the shortest representation of f that parses back to
// the same bits, always carrying a '.' or an exponent so that it stays a
// floating-point literal.
func formatFloat(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
