package config

import (
	"fmt"
	"regexp"

	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/placeholders"
)

// Exercise slug: lowercase letters, digits, and single hyphens.
var exerciseNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for
// settings that have no effect.
func Validate(cfg *Config) (warnings []string, err error) {
	d := dialect.NewRegistry(dialect.Options{}).Get(cfg.Dialect)
	if d == nil {
		return nil, &ValidationError{
			Field:   "dialect",
			Message: fmt.Sprintf("unknown dialect %q", cfg.Dialect),
		}
	}

	for name := range cfg.Exercises {
		if err := ValidateExerciseName(name); err != nil {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("exercises.%s", name),
				Message: err.(*ValidationError).Message,
			}
		}
	}

	if cfg.Maplit && d.Name() != "rust" {
		warnings = append(warnings, fmt.Sprintf("maplit has no effect with the %s dialect", d.Name()))
	}
	if cfg.Gofmt && d.Name() != "go" {
		warnings = append(warnings, fmt.Sprintf("gofmt has no effect with the %s dialect", d.Name()))
	}

	for _, name := range placeholders.Unknown(cfg.Output) {
		warnings = append(warnings, fmt.Sprintf("output: unknown placeholder $%s$", name))
	}
	for _, name := range placeholders.Unknown(cfg.Attribution) {
		warnings = append(warnings, fmt.Sprintf("attribution: unknown placeholder $%s$", name))
	}

	return warnings, nil
}

// ValidateExerciseName checks if an exercise slug is valid.
func ValidateExerciseName(name string) error {
	if name == "" {
		return &ValidationError{Field: "exercise", Message: "is required"}
	}
	if !exerciseNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "exercise",
			Message: "must match pattern ^[a-z0-9]+(-[a-z0-9]+)*$ (lowercase letters, digits, single hyphens)",
		}
	}
	return nil
}
