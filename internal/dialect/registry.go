package dialect

import (
	"sort"
	"strings"
)

// Options configures the built-in dialects.
type Options struct {
	Maplit bool
}

// Registry maps dialect names and aliases to dialects.
type Registry struct {
	dialects map[string]Dialect
}

// NewRegistry creates a registry holding every built-in dialect.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		dialects: make(map[string]Dialect),
	}

	goDialect := NewGo()
	rustDialect := NewRust(RustOptions{Maplit: opts.Maplit})

	r.dialects["go"] = goDialect
	r.dialects["golang"] = goDialect
	r.dialects["rust"] = rustDialect
	r.dialects["rs"] = rustDialect

	return r
}

// Get returns the dialect registered under name or alias.
// Returns nil if no dialect is found.
func (r *Registry) Get(name string) Dialect {
	return r.dialects[strings.ToLower(name)]
}

// Register adds a dialect under its own name and any aliases.
func (r *Registry) Register(d Dialect, aliases ...string) {
	r.dialects[strings.ToLower(d.Name())] = d
	for _, a := range aliases {
		r.dialects[strings.ToLower(a)] = d
	}
}

// Names returns the canonical names of registered dialects, sorted.
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, d := range r.dialects {
		if !seen[d.Name()] {
			seen[d.Name()] = true
			names = append(names, d.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Aliases returns the alternative names registered for the dialect called
// name, sorted.
func (r *Registry) Aliases(name string) []string {
	d := r.Get(name)
	if d == nil {
		return nil
	}
	var aliases []string
	for key, other := range r.dialects {
		if other == d && key != d.Name() {
			aliases = append(aliases, key)
		}
	}
	sort.Strings(aliases)
	return aliases
}
