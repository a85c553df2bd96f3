package generator

import (
	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/errors"
)

// TestUnit is one generated test derived from a single leaf case.
type TestUnit struct {
	// Position is the zero-based index of the unit in document order.
	Position    int
	Description string
	// Header holds the description and comments of the enclosing group. It
	// is set only on the first unit of a group.
	Header   []string
	Comments []string
	Property string
	Skip     bool

	Input    canonical.Value
	Expected canonical.Value

	InputLiteral    string
	ExpectedLiteral string
}

// Materialize turns a case into a test unit at the given position, rendering
// its input and expected values with d. Only the unit at position 0 runs
// without a skip marker.
func Materialize(c *canonical.Case, position int, d dialect.Dialect) (TestUnit, error) {
	if c.Description == "" {
		return TestUnit{}, errors.MalformedSpec(c.Property, "case #%d has no description", position+1)
	}
	if c.Property == "" {
		return TestUnit{}, errors.MalformedSpec(c.Description, "case has no property")
	}

	input := valueOrNull(c.Input)
	expected := valueOrNull(c.Expected)

	return TestUnit{
		Position:        position,
		Description:     c.Description,
		Comments:        noteLines(c.Optional, c.Comments),
		Property:        c.Property,
		Skip:            position != 0,
		Input:           input,
		Expected:        expected,
		InputLiteral:    d.Literal(input),
		ExpectedLiteral: d.Literal(expected),
	}, nil
}

// noteLines joins an optional note and free-form comments into doc lines.
func noteLines(optional string, comments []string) []string {
	var lines []string
	if optional != "" {
		lines = append(lines, "Optional: "+optional)
	}
	return append(lines, comments...)
}

func valueOrNull(v canonical.Value) canonical.Value {
	if v == nil {
		return canonical.Null{}
	}
	return v
}
