package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/config"
	"github.com/AndreyAkinshin/casegen/internal/errors"
	"github.com/AndreyAkinshin/casegen/internal/generator"
	"github.com/AndreyAkinshin/casegen/internal/project"
	"github.com/AndreyAkinshin/casegen/internal/source"
)

type validateOptions struct {
	dialect  string
	specRoot string
	all      bool
}

func (a *app) validateCommand() *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [file|exercise...]",
		Short: "Check canonical data without writing suites",
		Long: `Validate checks canonical data against the bundled schema and renders
every suite in memory, reporting malformed specifications such as missing
descriptions, nested groups and colliding test names.

Arguments naming an existing file are read directly; anything else is an
exercise of the problem-specifications checkout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.dialect, "dialect", "d", "", "dialect used for the dry run")
	f.StringVar(&opts.specRoot, "spec-root", "", "problem-specifications checkout")
	f.BoolVar(&opts.all, "all", false, "validate every exercise of the checkout")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, opts *validateOptions, args []string) error {
	if opts.all == (len(args) > 0) {
		return errors.Config("validate needs either file or exercise arguments or --all")
	}

	proj, err := a.loadProject()
	if err != nil {
		return err
	}
	specRoot := proj.SpecRoot()
	if cmd.Flags().Changed("spec-root") {
		if specRoot, err = filepath.Abs(opts.specRoot); err != nil {
			return err
		}
	}

	targets := args
	if opts.all {
		if err := requireDir(specRoot); err != nil {
			return err
		}
		if targets, err = project.DiscoverExercises(specRoot); err != nil {
			return errors.Wrap(err, "failed to list exercises")
		}
		if len(targets) == 0 {
			return errors.Environmentf("no exercises with canonical data under %s", specRoot)
		}
	}

	results := make([]result, 0, len(targets))
	for _, target := range targets {
		res := result{exercise: target}
		res.cases, res.err = a.validateOne(cmd, proj, opts, specRoot, target)
		results = append(results, res)
	}

	if len(results) > 1 {
		return a.summarize("Validate Summary", results)
	}
	if err := results[0].err; err != nil {
		return err
	}
	a.out.Success("%s: valid (%s)", results[0].exercise, results[0].detail())
	return nil
}

// validateOne checks one file or exercise and returns its case count.
func (a *app) validateOne(cmd *cobra.Command, proj *project.Project, opts *validateOptions, specRoot, target string) (int, error) {
	var (
		src      source.Source
		exercise string
		strict   = source.Options{Strict: true}
	)
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		src = source.NewFileSource(target, strict)
	} else {
		if err := config.ValidateExerciseName(target); err != nil {
			return 0, errors.Configf("%s is neither a file nor an exercise name", target)
		}
		if err := requireDir(specRoot); err != nil {
			return 0, err
		}
		exercise = target
		src = source.NewDirSource(specRoot, strict)
	}

	s := proj.Config.ForExercise(exercise)
	if cmd.Flags().Changed("dialect") {
		s.Dialect = opts.dialect
	}
	d, err := lookupDialect(s.Dialect, s.Maplit)
	if err != nil {
		return 0, err
	}

	spec, err := src.Fetch(exercise)
	if err != nil {
		return 0, err
	}
	for _, w := range spec.Warnings {
		a.out.Warning("%s", w)
	}

	cases := spec.Document.Cases
	if _, err := generator.Generate(cases, "", d); err != nil {
		return 0, fmt.Errorf("%s: %w", spec.Path, err)
	}
	return canonical.CountCases(cases), nil
}
