package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/ident"
)

// RustOptions configures the Rust dialect.
type RustOptions struct {
	// Maplit renders mappings with the maplit crate's hashmap! macro instead
	// of an inline HashMap builder block.
	Maplit bool
}

// RustDialect renders suites in the layout of an Exercism Rust track test file.
type RustDialect struct {
	opts RustOptions
}

// NewRust creates the Rust dialect.
func NewRust(opts RustOptions) *RustDialect {
	return &RustDialect{opts: opts}
}

// Name returns the dialect name.
func (d *RustDialect) Name() string {
	return "rust"
}

// FileName returns "<exercise>.rs".
func (d *RustDialect) FileName(exercise string) string {
	return exercise + ".rs"
}

// CrateName returns the crate name of an exercise: its normalized identifier,
// prefixed when it would start with a digit.
func (d *RustDialect) CrateName(exercise string) string {
	name := ident.Normalize(exercise)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "exercise_" + name
	}
	return name
}

// Preamble renders the inner doc comment and use declarations.
func (d *RustDialect) Preamble(meta Meta) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("//! Tests for %s", meta.Exercise))
	if meta.Attribution != "" {
		lines = append(lines, "//!")
		lines = append(lines, commentLines("//!", meta.Attribution)...)
	}
	if meta.Version != "" || meta.SourceURL != "" {
		lines = append(lines, "//!")
	}
	if meta.Version != "" {
		lines = append(lines, fmt.Sprintf("//! Canonical data version: %s", meta.Version))
	}
	if meta.SourceURL != "" {
		lines = append(lines, fmt.Sprintf("//! [canonical data]: %s", meta.SourceURL))
	}
	if len(meta.Comments) > 0 {
		lines = append(lines, "//!")
		lines = append(lines, commentLines("//!", meta.Comments...)...)
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	if d.opts.Maplit {
		b.WriteString("use maplit::hashmap;\n")
	}
	fmt.Fprintf(&b, "use %s::*;\n", d.CrateName(meta.Exercise))
	return b.String()
}

// Placeholder returns the comment written when no canonical data exists.
func (d *RustDialect) Placeholder() string {
	return "// Add your tests here\n"
}

// HelperName returns process_<property>_case.
func (d *RustDialect) HelperName(property string) string {
	return "process_" + ident.Normalize(property) + "_case"
}

// Helper renders the shared generic helper for a property.
func (d *RustDialect) Helper(property string) string {
	name := d.HelperName(property)
	fn := ident.Normalize(property)

	var b strings.Builder
	fmt.Fprintf(&b, "/// Runs a single test case for the property `%s`.\n", property)
	b.WriteString("///\n")
	fmt.Fprintf(&b, "/// Every case of the `%s` property calls this function.\n", property)
	b.WriteString("/// Name the solution function below and replace the generic `I` and `O`\n")
	b.WriteString("/// parameters with concrete types; rustc reports confusing errors otherwise.\n")
	fmt.Fprintf(&b, "fn %s<I, O>(input: I, expected: O) {\n", name)
	b.WriteString("    // typical implementation:\n")
	b.WriteString("    // assert_eq!(\n")
	fmt.Fprintf(&b, "    //     %s(input),\n", fn)
	b.WriteString("    //     expected\n")
	b.WriteString("    // )\n")
	b.WriteString("    unimplemented!()\n")
	b.WriteString("}\n")
	return b.String()
}

// Literal renders v as a Rust expression.
func (d *RustDialect) Literal(v canonical.Value) string {
	var b strings.Builder
	d.writeLiteral(&b, v)
	return b.String()
}

func (d *RustDialect) writeLiteral(b *strings.Builder, v canonical.Value) {
	switch x := v.(type) {
	case canonical.Bool:
		b.WriteString(strconv.FormatBool(bool(x)))
	case canonical.Int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case canonical.Uint:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case canonical.Float:
		b.WriteString(formatFloat(float64(x)))
	case canonical.String:
		b.WriteString(rustQuote(string(x)))
	case canonical.Seq:
		b.WriteString("vec![")
		for i, item := range x {
			if i > 0 {
				b.WriteString(", ")
			}
			d.writeLiteral(b, item)
		}
		b.WriteString("]")
	case canonical.Map:
		if d.opts.Maplit {
			b.WriteString("hashmap!{")
			for i, e := range x {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(rustQuote(e.Key))
				b.WriteString(" => ")
				d.writeLiteral(b, e.Value)
			}
			b.WriteString("}")
			return
		}
		b.WriteString("{let mut hm = ::std::collections::HashMap::new();")
		for _, e := range x {
			b.WriteString(" hm.insert(")
			b.WriteString(rustQuote(e.Key))
			b.WriteString(", ")
			d.writeLiteral(b, e.Value)
			b.WriteString(");")
		}
		b.WriteString(" hm}")
	default:
		b.WriteString("None")
	}
}

// TestBlock renders a unit as a #[test] function.
func (d *RustDialect) TestBlock(u Unit) string {
	var b strings.Builder
	b.WriteString("#[test]\n")
	if u.Skip {
		b.WriteString("#[ignore]\n")
	}
	for _, line := range docBlock("///", u) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "fn test_%s() {\n", u.Name)
	fmt.Fprintf(&b, "    %s(%s, %s);\n", d.HelperName(u.Property), u.Input, u.Expected)
	b.WriteString("}\n")
	return b.String()
}

// rustQuote renders s as a Rust string literal. Invalid UTF-8 bytes become
// U+FFFD since Rust strings are always valid UTF-8.
func rustQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size <= 1 {
			b.WriteString(`\u{fffd}`)
			continue
		}
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
			} else {
				fmt.Fprintf(&b, `\u{%x}`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
