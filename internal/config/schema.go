// Package config provides configuration loading and validation for .casegen.yaml.
package config

// Config represents the complete .casegen.yaml configuration.
type Config struct {
	// Dialect is the target language of generated suites.
	Dialect string `yaml:"dialect,omitempty"`
	// SpecRoot is a local problem-specifications checkout, relative to the
	// project root.
	SpecRoot string `yaml:"spec_root,omitempty"`
	// Output is the path template of generated files, relative to the project
	// root. Empty writes to stdout.
	Output string `yaml:"output,omitempty"`
	// Maplit renders Rust mappings with the maplit crate.
	Maplit bool `yaml:"maplit,omitempty"`
	// Gofmt formats Go output in process before writing it.
	Gofmt bool `yaml:"gofmt,omitempty"`
	// Strict validates canonical data against the bundled schema before
	// generating.
	Strict bool `yaml:"strict,omitempty"`
	// Attribution is the preamble note template.
	Attribution string `yaml:"attribution,omitempty"`

	Exercises map[string]ExerciseConfig `yaml:"exercises,omitempty"`
}

// ExerciseConfig overrides project settings for a single exercise.
type ExerciseConfig struct {
	Output string `yaml:"output,omitempty"`
	Maplit *bool  `yaml:"maplit,omitempty"`
	// Source overrides the canonical data location, relative to the project root.
	Source string `yaml:"source,omitempty"`
}

// Settings are the effective options for generating one exercise.
type Settings struct {
	Dialect     string
	Output      string
	Maplit      bool
	Gofmt       bool
	Strict      bool
	Attribution string
	Source      string
}

// ForExercise merges the per-exercise overrides of name into the project settings.
func (c *Config) ForExercise(name string) Settings {
	s := Settings{
		Dialect:     c.Dialect,
		Output:      c.Output,
		Maplit:      c.Maplit,
		Gofmt:       c.Gofmt,
		Strict:      c.Strict,
		Attribution: c.Attribution,
	}
	ex, ok := c.Exercises[name]
	if !ok {
		return s
	}
	if ex.Output != "" {
		s.Output = ex.Output
	}
	if ex.Maplit != nil {
		s.Maplit = *ex.Maplit
	}
	s.Source = ex.Source
	return s
}
