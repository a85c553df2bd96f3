// Package schema provides JSON schema validation for canonical data and
// casegen configuration files.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/casegen/schema"
)

// Embedded schema file names.
const (
	CanonicalDataSchema = "canonical-data.schema.json"
	ConfigSchema        = "config.schema.json"
)

var (
	canonicalSchema *jsonschema.Schema
	configSchema    *jsonschema.Schema
	compileOnce     sync.Once
	compileErr      error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{CanonicalDataSchema, ConfigSchema} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		canonicalSchema, err = compiler.Compile(CanonicalDataSchema)
		if err != nil {
			compileErr = fmt.Errorf("compile canonical data schema: %w", err)
			return
		}

		configSchema, err = compiler.Compile(ConfigSchema)
		if err != nil {
			compileErr = fmt.Errorf("compile config schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateCanonicalData validates JSON data against the canonical data schema.
func ValidateCanonicalData(data []byte) error {
	return validate(data, func() *jsonschema.Schema { return canonicalSchema }, "canonical data")
}

// ValidateConfig validates JSON data against the configuration schema.
func ValidateConfig(data []byte) error {
	return validate(data, func() *jsonschema.Schema { return configSchema }, "config")
}

func validate(data []byte, sch func() *jsonschema.Schema, what string) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := sch().Validate(v); err != nil {
		return fmt.Errorf("%s validation failed: %w", what, err)
	}

	return nil
}
