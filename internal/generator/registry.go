package generator

import (
	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/errors"
)

// PropertyEntry is one registered property with its rendered helper.
type PropertyEntry struct {
	Property   string
	HelperName string
	Body       string
}

// PropertyRegistry holds one helper per distinct property name, in the order
// the properties were first seen. It is append-only and lives for one run.
type PropertyRegistry struct {
	dialect dialect.Dialect
	entries []PropertyEntry
	byName  map[string]int    // property -> index into entries
	helpers map[string]string // helper name -> property
}

// NewPropertyRegistry creates an empty registry rendering helpers with d.
func NewPropertyRegistry(d dialect.Dialect) *PropertyRegistry {
	return &PropertyRegistry{
		dialect: d,
		byName:  make(map[string]int),
		helpers: make(map[string]string),
	}
}

// Register returns the helper body for property, rendering and storing it on
// first sight. Registering a known property is a no-op.
//
// Distinct property names that the dialect maps to the same helper identifier
// (for example "is_valid" and "isValid" in a snake_case dialect) are rejected,
// as is a name with no identifier characters at all.
func (r *PropertyRegistry) Register(property string) (string, error) {
	if i, ok := r.byName[property]; ok {
		return r.entries[i].Body, nil
	}
	if NormalizeIdentifier(property) == "" {
		return "", errors.MalformedSpec(property, "property %q does not yield an identifier", property)
	}

	name := r.dialect.HelperName(property)
	if other, ok := r.helpers[name]; ok {
		return "", errors.MalformedSpec(property,
			"property %q collides with property %q: both map to helper %s", property, other, name)
	}

	entry := PropertyEntry{
		Property:   property,
		HelperName: name,
		Body:       r.dialect.Helper(property),
	}
	r.byName[property] = len(r.entries)
	r.helpers[name] = property
	r.entries = append(r.entries, entry)
	return entry.Body, nil
}

// Entries returns the registered properties in first-seen order.
func (r *PropertyRegistry) Entries() []PropertyEntry {
	out := make([]PropertyEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Has reports whether property has been registered.
func (r *PropertyRegistry) Has(property string) bool {
	_, ok := r.byName[property]
	return ok
}

// Len returns the number of distinct properties.
func (r *PropertyRegistry) Len() int {
	return len(r.entries)
}
