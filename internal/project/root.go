// Package project locates a casegen project and loads its configuration.
package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the casegen configuration file. Its directory
// is the project root.
const ConfigFileName = ".casegen.yaml"

// ErrNoProjectRoot is returned when .casegen.yaml is not found.
var ErrNoProjectRoot = errors.New(".casegen.yaml not found: not a casegen project (or any parent up to the root)")

// FindRoot walks up from the current working directory until it finds .casegen.yaml.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds .casegen.yaml.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
