package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/casegen/internal/schema"
)

// LoadWithWarnings parses config data, checks it against the bundled schema,
// and returns any unknown field warnings.
func LoadWithWarnings(path string, data []byte) (*Config, []string, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if raw == nil {
		return &cfg, nil, nil
	}

	// The schema validator works on JSON-shaped values.
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := schema.ValidateConfig(doc); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, detectUnknownFields(raw), nil
}

// detectUnknownFields compares the raw document with known struct fields.
func detectUnknownFields(raw map[string]interface{}) []string {
	var warnings []string

	knownTopLevel := getYAMLFields(reflect.TypeOf(Config{}))
	for _, key := range sortedKeys(raw) {
		if key == "$schema" {
			continue
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if exercises, ok := raw["exercises"].(map[string]interface{}); ok {
		warnings = append(warnings, checkExercisesUnknownFields(exercises)...)
	}

	return warnings
}

func checkExercisesUnknownFields(exercises map[string]interface{}) []string {
	var warnings []string

	knownExerciseFields := getYAMLFields(reflect.TypeOf(ExerciseConfig{}))
	for _, name := range sortedKeys(exercises) {
		fields, ok := exercises[name].(map[string]interface{})
		if !ok {
			continue
		}
		for _, key := range sortedKeys(fields) {
			if !knownExerciseFields[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in exercise %q (ignored)", key, name))
			}
		}
	}

	return warnings
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			fields[name] = true
		}
	}
	return fields
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
