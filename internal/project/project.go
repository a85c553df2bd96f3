package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/casegen/internal/config"
)

// Project represents a loaded casegen project.
type Project struct {
	Root     string
	Config   *config.Config
	Warnings []string
	// Implicit is set when no .casegen.yaml exists and defaults are in use.
	Implicit bool
}

// LoadProject finds and loads a project from the current directory. Without
// a .casegen.yaml anywhere up the tree, the working directory becomes an
// implicit project with default settings.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if errors.Is(err, ErrNoProjectRoot) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return Implicit(cwd), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a project from a specified root directory.
func LoadProjectFrom(root string) (*Project, error) {
	cfg, warnings, err := config.LoadAndValidate(filepath.Join(root, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Warnings: warnings,
	}, nil
}

// LoadConfigFile loads a project whose configuration lives at an explicit
// path. The file's directory is the project root.
func LoadConfigFile(path string) (*Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg, warnings, err := config.LoadAndValidate(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &Project{
		Root:     filepath.Dir(abs),
		Config:   cfg,
		Warnings: warnings,
	}, nil
}

// Implicit returns a project rooted at dir with default settings. The dialect
// is detected from the build files in dir when possible.
func Implicit(dir string) *Project {
	cfg := config.Default()
	if d, ok := DetectDialect(dir); ok {
		cfg.Dialect = d
	}
	return &Project{Root: dir, Config: cfg, Implicit: true}
}

// ConfigPath returns the full path to the project configuration file.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.Root, ConfigFileName)
}

// Path resolves a configured path against the project root. Absolute paths
// are returned unchanged.
func (p *Project) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(p.Root, rel)
}

// SpecRoot returns the absolute path of the problem-specifications checkout.
func (p *Project) SpecRoot() string {
	return p.Path(p.Config.SpecRoot)
}
