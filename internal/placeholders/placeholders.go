// Package placeholders resolves $NAME$ placeholders in attribution notes and
// output path templates.
package placeholders

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Context provides values for placeholder resolution.
type Context struct {
	Exercise    string
	Version     string // canonical data version
	Dialect     string
	File        string // dialect file name of the exercise
	ToolVersion string
}

// resolver returns the value of a placeholder.
type resolver func(ctx *Context) string

// builtinPlaceholders defines the standard placeholders.
var builtinPlaceholders = map[string]resolver{
	"EXERCISE":     func(ctx *Context) string { return ctx.Exercise },
	"SNAKE_NAME":   func(ctx *Context) string { return strings.ReplaceAll(ctx.Exercise, "-", "_") },
	"VERSION":      resolveVersion,
	"DIALECT":      func(ctx *Context) string { return ctx.Dialect },
	"FILE":         func(ctx *Context) string { return ctx.File },
	"TOOL_VERSION": func(ctx *Context) string { return ctx.ToolVersion },
}

var placeholderPattern = regexp.MustCompile(`\$([A-Z][A-Z0-9_]*)\$`)

// Resolve replaces every known placeholder in template. Unknown placeholders
// are left in place and reported as warnings.
func Resolve(template string, ctx *Context) (string, []string) {
	var warnings []string
	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if r, ok := builtinPlaceholders[name]; ok {
			return r(ctx)
		}
		return match
	})
	for _, name := range Unknown(template) {
		warnings = append(warnings, fmt.Sprintf("unknown placeholder $%s$ in template", name))
	}
	return result, warnings
}

func resolveVersion(ctx *Context) string {
	if ctx.Version == "" {
		return "unversioned"
	}
	return ctx.Version
}

// List returns all placeholder names used in a template, in first-use order.
func List(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	return names
}

// Unknown returns the placeholder names in template that have no resolver.
func Unknown(template string) []string {
	var unknowns []string
	for _, name := range List(template) {
		if _, ok := builtinPlaceholders[name]; !ok {
			unknowns = append(unknowns, name)
		}
	}
	return unknowns
}

// Names returns the names of all built-in placeholders, sorted.
func Names() []string {
	names := make([]string, 0, len(builtinPlaceholders))
	for name := range builtinPlaceholders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
