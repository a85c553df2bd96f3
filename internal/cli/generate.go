package cli

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/config"
	"github.com/AndreyAkinshin/casegen/internal/dialect"
	"github.com/AndreyAkinshin/casegen/internal/errors"
	"github.com/AndreyAkinshin/casegen/internal/generator"
	"github.com/AndreyAkinshin/casegen/internal/placeholders"
	"github.com/AndreyAkinshin/casegen/internal/project"
	"github.com/AndreyAkinshin/casegen/internal/source"
	"github.com/AndreyAkinshin/casegen/internal/version"
)

// dash names stdin as an input path and stdout as an output path.
const dash = "-"

type generateOptions struct {
	dialect  string
	specRoot string
	input    string
	out      string
	maplit   bool
	gofmt    bool
	strict   bool
	all      bool
}

// result is the outcome of generating or validating one exercise.
type result struct {
	exercise string
	target   string // written file, empty for stdout and dry runs
	version  string // canonical data version
	cases    int
	err      error
}

func (r result) detail() string {
	switch {
	case r.err != nil:
		return r.err.Error()
	case r.target != "":
		return fmt.Sprintf("%s (%d cases)", r.target, r.cases)
	default:
		return fmt.Sprintf("%d cases", r.cases)
	}
}

func (a *app) generateCommand() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [exercise...]",
		Short: "Generate test suites for exercises",
		Long: `Generate reads the canonical data of each exercise from the
problem-specifications checkout (or from --input) and writes one test suite
per exercise. Without an output path the suite is printed to stdout.

Exercises without canonical data get a placeholder suite.`,
		Example: `  casegen generate book-store
  casegen generate --dialect go --out '$SNAKE_NAME$/$FILE$' --all
  cat canonical-data.json | casegen generate --input - two-fer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.dialect, "dialect", "d", "", "target dialect (go, rust)")
	f.StringVar(&opts.specRoot, "spec-root", "", "problem-specifications checkout")
	f.StringVarP(&opts.input, "input", "i", "", "canonical data file, or - for stdin")
	f.StringVarP(&opts.out, "out", "o", "", "output path template, or - for stdout")
	f.BoolVar(&opts.maplit, "maplit", false, "render Rust mappings with the maplit crate")
	f.BoolVar(&opts.gofmt, "gofmt", false, "format Go suites before writing them")
	f.BoolVar(&opts.strict, "strict", false, "validate canonical data against the bundled schema")
	f.BoolVar(&opts.all, "all", false, "generate every exercise of the checkout")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions, args []string) error {
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

	exercises, err := a.selectExercises(opts, args, specRoot)
	if err != nil {
		return err
	}

	results := make([]result, 0, len(exercises))
	written := make(map[string]string)
	for _, ex := range exercises {
		res, text := a.generateOne(cmd, proj, opts, specRoot, ex, len(exercises) > 1)
		if res.err == nil {
			res.err = a.emit(res, text, written)
		}
		results = append(results, res)
	}

	if len(results) == 1 {
		res := results[0]
		if res.err != nil {
			return res.err
		}
		if res.target != "" {
			a.out.Success("%s: wrote %s (%d cases)", res.exercise, res.target, res.cases)
		}
		return nil
	}
	return a.summarize("Generate Summary", results)
}

// selectExercises resolves the exercise names a generate run covers. An empty
// name stands for "whatever the input document declares".
func (a *app) selectExercises(opts *generateOptions, args []string, specRoot string) ([]string, error) {
	switch {
	case opts.all && len(args) > 0:
		return nil, errors.Config("--all cannot be combined with exercise names")
	case opts.all && opts.input != "":
		return nil, errors.Config("--all cannot be combined with --input")
	case opts.input != "" && len(args) > 1:
		return nil, errors.Config("--input reads a single document; name at most one exercise")
	case opts.input == "" && !opts.all && len(args) == 0:
		return nil, errors.Config("no exercises given; name at least one or pass --all")
	}

	for _, name := range args {
		if err := config.ValidateExerciseName(name); err != nil {
			return nil, errors.Config(err.Error())
		}
	}

	if opts.all {
		if err := requireDir(specRoot); err != nil {
			return nil, err
		}
		exercises, err := project.DiscoverExercises(specRoot)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list exercises")
		}
		if len(exercises) == 0 {
			return nil, errors.Environmentf("no exercises with canonical data under %s", specRoot)
		}
		a.out.Info("found %d exercises under %s", len(exercises), specRoot)
		return exercises, nil
	}
	if len(args) == 0 {
		return []string{""}, nil
	}
	return args, nil
}

// settings merges the configuration for exercise with the flags given on the
// command line. Flag paths are taken relative to the working directory.
func (opts *generateOptions) settings(cmd *cobra.Command, cfg *config.Config, exercise string) (config.Settings, error) {
	s := cfg.ForExercise(exercise)
	f := cmd.Flags()
	if f.Changed("dialect") {
		s.Dialect = opts.dialect
	}
	if f.Changed("maplit") {
		s.Maplit = opts.maplit
	}
	if f.Changed("gofmt") {
		s.Gofmt = opts.gofmt
	}
	if f.Changed("strict") {
		s.Strict = opts.strict
	}
	if f.Changed("out") {
		s.Output = opts.out
		if s.Output != dash && s.Output != "" {
			abs, err := filepath.Abs(s.Output)
			if err != nil {
				return s, err
			}
			s.Output = abs
		}
	}
	return s, nil
}

// generateOne renders the suite of one exercise and resolves where it goes.
// Nothing is written yet.
func (a *app) generateOne(cmd *cobra.Command, proj *project.Project, opts *generateOptions, specRoot, exercise string, multi bool) (result, string) {
	res := result{exercise: exercise}

	s, err := opts.settings(cmd, proj.Config, exercise)
	if err != nil {
		res.err = err
		return res, ""
	}
	if multi && isStdout(s.Output) {
		res.err = errors.Configf("%s: several exercises need an output path template (--out or output:)", exercise)
		return res, ""
	}

	d, err := lookupDialect(s.Dialect, s.Maplit)
	if err != nil {
		res.err = err
		return res, ""
	}

	src, err := a.sourceFor(proj, opts, s, specRoot)
	if err != nil {
		res.err = err
		return res, ""
	}

	text, spec, err := a.render(src, s, d, exercise)
	if spec != nil {
		res.exercise = spec.Document.Exercise
		res.version = spec.Document.Version
		res.cases = canonical.CountCases(spec.Document.Cases)
	}
	if err != nil {
		res.err = err
		return res, ""
	}

	if s.Gofmt && d.Name() == "go" {
		formatted, err := format.Source([]byte(text))
		if err != nil {
			res.err = errors.Wrap(err, fmt.Sprintf("%s: generated Go does not format", res.exercise))
			return res, ""
		}
		text = string(formatted)
	}

	if isStdout(s.Output) {
		return res, text
	}

	rel, _ := placeholders.Resolve(s.Output, &placeholders.Context{
		Exercise:    res.exercise,
		Version:     res.version,
		Dialect:     d.Name(),
		File:        d.FileName(res.exercise),
		ToolVersion: Version,
	})
	res.target = proj.Path(rel)
	return res, text
}

// emit writes text to the result's target, or to stdout when it has none.
// written maps every file already produced by this run to its exercise.
func (a *app) emit(res result, text string, written map[string]string) error {
	if res.target == "" {
		a.out.Print("%s", text)
		return nil
	}
	if prev, ok := written[res.target]; ok {
		return errors.Configf("%s: output %s was already written for %s", res.exercise, res.target, prev)
	}
	if existing, err := os.ReadFile(res.target); err == nil && res.version != "" {
		if recorded, ok := version.Recorded(string(existing)); ok && version.Downgrade(recorded, res.version) {
			a.out.Warning("%s: replacing a suite built from canonical data %s with older data %s", res.exercise, recorded, res.version)
		}
	}
	if err := writeFile(res.target, text); err != nil {
		return err
	}
	written[res.target] = res.exercise
	return nil
}

// render fetches the canonical data of exercise and renders its suite. A
// missing document yields a placeholder suite and a nil spec.
func (a *app) render(src source.Source, s config.Settings, d dialect.Dialect, exercise string) (string, *source.Spec, error) {
	spec, err := src.Fetch(exercise)
	if errors.IsNotFound(err) && exercise != "" {
		a.out.Warning("%s: %v; writing a placeholder suite", exercise, err)
		meta := dialect.Meta{
			Exercise:    exercise,
			Attribution: attribution(s, d, exercise, ""),
		}
		return generator.Placeholder(d.Preamble(meta), d), nil, nil
	}
	if err != nil {
		return "", nil, err
	}

	for _, w := range spec.Warnings {
		a.out.Warning("%s", w)
	}

	doc := spec.Document
	if exercise != "" {
		doc.Exercise = exercise
	}
	if doc.Exercise == "" {
		return "", spec, errors.Configf("%s: the document names no exercise; pass the exercise name", spec.Path)
	}
	if err := config.ValidateExerciseName(doc.Exercise); err != nil {
		return "", spec, errors.Config(err.Error())
	}

	meta := dialect.Meta{
		Exercise:    doc.Exercise,
		Version:     doc.Version,
		Comments:    doc.Comments,
		Attribution: attribution(s, d, doc.Exercise, doc.Version),
		SourceURL:   sourceRef(spec.Path),
		CaseCount:   canonical.CountCases(doc.Cases),
	}
	if meta.CaseCount == 0 {
		a.out.Warning("%s: canonical data has no cases", doc.Exercise)
	}
	a.out.Debug("%s: %d cases from %s", doc.Exercise, meta.CaseCount, spec.Path)

	text, err := generator.Generate(doc.Cases, d.Preamble(meta), d)
	if err != nil {
		return "", spec, fmt.Errorf("%s: %w", spec.Path, err)
	}
	return text, spec, nil
}

func (a *app) sourceFor(proj *project.Project, opts *generateOptions, s config.Settings, specRoot string) (source.Source, error) {
	so := source.Options{Strict: s.Strict}
	switch {
	case opts.input == dash:
		return &source.ReaderSource{Name: "<stdin>", R: a.stdin, Options: so}, nil
	case opts.input != "":
		abs, err := filepath.Abs(opts.input)
		if err != nil {
			return nil, err
		}
		return source.NewFileSource(abs, so), nil
	case s.Source != "":
		return source.NewFileSource(proj.Path(s.Source), so), nil
	}
	if err := requireDir(specRoot); err != nil {
		return nil, err
	}
	return source.NewDirSource(specRoot, so), nil
}

func lookupDialect(name string, maplit bool) (dialect.Dialect, error) {
	registry := dialect.NewRegistry(dialect.Options{Maplit: maplit})
	d := registry.Get(name)
	if d == nil {
		return nil, errors.Configf("unknown dialect %q (available: %s)", name, strings.Join(registry.Names(), ", "))
	}
	return d, nil
}

func attribution(s config.Settings, d dialect.Dialect, exercise, ver string) string {
	note, _ := placeholders.Resolve(s.Attribution, &placeholders.Context{
		Exercise:    exercise,
		Version:     ver,
		Dialect:     d.Name(),
		File:        d.FileName(exercise),
		ToolVersion: Version,
	})
	return note
}

// sourceRef names a fetched document in the suite preamble. Local checkouts
// are referenced from the exercises directory on so that the preamble does
// not depend on where the checkout lives.
func sourceRef(path string) string {
	if strings.HasPrefix(path, "<") {
		return ""
	}
	slashed := filepath.ToSlash(path)
	if i := strings.LastIndex(slashed, "/exercises/"); i >= 0 {
		return slashed[i+1:]
	}
	return filepath.Base(path)
}

func isStdout(output string) bool {
	return output == "" || output == dash
}

func requireDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.Environmentf("problem-specifications checkout not found at %s (set spec_root or pass --spec-root)", dir)
	}
	return nil
}

func writeFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to write %s", path))
	}
	return nil
}

// summarize prints one line per result and folds the failures into one error
// whose kind is that of the first failure.
func (a *app) summarize(title string, results []result) error {
	a.out.SummaryHeader(title)
	var first error
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			if first == nil {
				first = res.err
			}
		}
		a.out.SummaryAction(res.exercise, res.err == nil, res.detail())
	}
	if first == nil {
		return nil
	}
	return &errors.CasegenError{
		Kind:    errors.KindOf(first),
		Message: fmt.Sprintf("%d of %d exercises failed", failed, len(results)),
	}
}
