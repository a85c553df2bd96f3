package generator

import (
	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/errors"
)

// Walk flattens the top-level cases of a canonical specification into test
// units in document order and registers every property it meets.
//
// Groups nest exactly one level deep. A group's description and comments
// become the header of its first unit; an empty group contributes nothing.
// An empty cases list yields no units and an empty registry.
func Walk(cases []canonical.Node, d dialect.Dialect) ([]TestUnit, *PropertyRegistry, error) {
	w := &walker{
		dialect:  d,
		registry: NewPropertyRegistry(d),
	}
	for i, n := range cases {
		if err := w.node(i, n); err != nil {
			return nil, nil, err
		}
	}
	return w.units, w.registry, nil
}

type walker struct {
	dialect  dialect.Dialect
	registry *PropertyRegistry
	units    []TestUnit
}

func (w *walker) node(index int, n canonical.Node) error {
	switch n := n.(type) {
	case *canonical.Case:
		return w.leaf(n, nil)
	case *canonical.Group:
		return w.group(index, n)
	}
	return errors.Newf("unexpected node type %T", n)
}

func (w *walker) group(index int, g *canonical.Group) error {
	if g.Description == "" {
		return errors.MalformedSpec("", "cases[%d]: group has no description", index)
	}

	header := append([]string{g.Description}, noteLines(g.Optional, g.Comments)...)
	for _, child := range g.Cases {
		c, ok := child.(*canonical.Case)
		if !ok {
			return errors.MalformedSpec(child.Describe(),
				"group %q contains a nested group; groups may nest only one level deep", g.Description)
		}
		if err := w.leaf(c, header); err != nil {
			return err
		}
		header = nil
	}
	return nil
}

func (w *walker) leaf(c *canonical.Case, header []string) error {
	unit, err := Materialize(c, len(w.units), w.dialect)
	if err != nil {
		return err
	}
	if _, err := w.registry.Register(c.Property); err != nil {
		return err
	}
	unit.Header = header
	w.units = append(w.units, unit)
	return nil
}
