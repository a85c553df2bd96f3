package canonical

import (
	"fmt"

	"github.com/AndreyAkinshin/casegen/internal/errors"
)

// Node is an element of a canonical specification's cases tree: a *Group or a *Case.
type Node interface {
	// Describe returns the node's description, or "" when it has none.
	Describe() string
	node()
}

// Group bundles several cases under a shared description and comment block.
type Group struct {
	Description string
	Optional    string
	Comments    []string
	Cases       []Node
}

// Case is a single leaf test case.
type Case struct {
	Description string
	Property    string
	Optional    string
	Comments    []string
	Input       Value
	Expected    Value
}

func (g *Group) Describe() string { return g.Description }
func (c *Case) Describe() string  { return c.Description }

func (*Group) node() {}
func (*Case) node()  {}

// reservedCaseKeys are the case keys that never form part of a legacy input.
var reservedCaseKeys = map[string]bool{
	"description":  true,
	"property":     true,
	"comments":     true,
	"optional":     true,
	"expected":     true,
	"uuid":         true,
	"reimplements": true,
	"scenarios":    true,
}

// ParseNodes converts the value of a "cases" key into nodes.
// Structural validation beyond field types is left to the tree walker.
func ParseNodes(v Value) ([]Node, error) {
	seq, ok := v.(Seq)
	if !ok {
		return nil, errors.MalformedSpec("", `"cases" must be an array, got %s`, KindName(v))
	}

	nodes := make([]Node, 0, len(seq))
	for i, item := range seq {
		n, err := ParseNode(item)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// ParseNode converts a single cases element. An object with a "cases" key is a
// Group; every other object is a Case.
func ParseNode(v Value) (Node, error) {
	m, ok := v.(Map)
	if !ok {
		return nil, errors.MalformedSpec("", "case must be an object, got %s", KindName(v))
	}

	description, err := optionalString(m, "description")
	if err != nil {
		return nil, errors.MalformedSpec("", "%v", err)
	}
	optional, err := optionalString(m, "optional")
	if err != nil {
		return nil, errors.MalformedSpec(description, "%v", err)
	}
	comments, err := ParseComments(m)
	if err != nil {
		return nil, errors.MalformedSpec(description, "%v", err)
	}

	if children, ok := m.Get("cases"); ok {
		nodes, err := ParseNodes(children)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", description, err)
		}
		return &Group{
			Description: description,
			Optional:    optional,
			Comments:    comments,
			Cases:       nodes,
		}, nil
	}

	property, err := optionalString(m, "property")
	if err != nil {
		return nil, errors.MalformedSpec(description, "%v", err)
	}

	c := &Case{
		Description: description,
		Property:    property,
		Optional:    optional,
		Comments:    comments,
	}
	c.Input = legacyInput(m)
	c.Expected = Null{}
	if expected, ok := m.Get("expected"); ok {
		c.Expected = expected
	}
	return c, nil
}

// legacyInput returns the "input" value, or for the older canonical-data
// layout, the ordered mapping of every non-reserved key.
func legacyInput(m Map) Value {
	if input, ok := m.Get("input"); ok {
		return input
	}
	var extra Map
	for _, e := range m {
		if !reservedCaseKeys[e.Key] {
			extra = append(extra, e)
		}
	}
	if len(extra) == 0 {
		return Null{}
	}
	return extra
}

// ParseComments reads the optional "comments" key, accepting a single string
// or an array of strings.
func ParseComments(m Map) ([]string, error) {
	v, ok := m.Get("comments")
	if !ok {
		return nil, nil
	}
	switch c := v.(type) {
	case Null:
		return nil, nil
	case String:
		return []string{string(c)}, nil
	case Seq:
		lines := make([]string, 0, len(c))
		for i, item := range c {
			s, ok := item.(String)
			if !ok {
				return nil, fmt.Errorf(`"comments[%d]" must be a string, got %s`, i, KindName(item))
			}
			lines = append(lines, string(s))
		}
		return lines, nil
	}
	return nil, fmt.Errorf(`"comments" must be a string or an array of strings, got %s`, KindName(v))
}

func optionalString(m Map, key string) (string, error) {
	v, ok := m.Get(key)
	if !ok {
		return "", nil
	}
	s, ok := v.(String)
	if !ok {
		return "", fmt.Errorf("%q must be a string, got %s", key, KindName(v))
	}
	return string(s), nil
}

// CountCases returns the number of leaf cases in nodes, at any depth.
func CountCases(nodes []Node) int {
	n := 0
	for _, node := range nodes {
		switch x := node.(type) {
		case *Group:
			n += CountCases(x.Cases)
		case *Case:
			n++
		}
	}
	return n
}
