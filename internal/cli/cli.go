// Package cli provides the casegen command line.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/casegen/internal/errors"
	"github.com/AndreyAkinshin/casegen/internal/output"
	"github.com/AndreyAkinshin/casegen/internal/project"
)

// Version is set at build time.
var Version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	out   *output.Writer
	stdin io.Reader

	configPath string
	quiet      bool
	verbose    bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return RunWith(args, os.Stdin, output.New())
}

// RunWith executes the CLI against explicit streams.
func RunWith(args []string, stdin io.Reader, w *output.Writer) int {
	a := &app{out: w, stdin: stdin}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(w.Out())
	root.SetErr(w.Err())

	if err := root.Execute(); err != nil {
		w.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "casegen",
		Short: "Generate test suites from canonical exercise data",
		Long: `casegen turns the canonical-data.json of an exercise into a test suite
for a target language. Every case becomes one test; the first test runs and
the rest are disabled so that a solution can be built up one case at a time.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.quiet && a.verbose {
				return errors.Config("--quiet and --verbose cannot be used together")
			}
			a.out.SetQuiet(a.quiet)
			a.out.SetVerbose(a.verbose)
			return nil
		},
	}
	root.SetVersionTemplate("casegen {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Configf("%s: %v", cmd.CommandPath(), err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to .casegen.yaml (default: search from the working directory)")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "minimal output (errors only)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "maximum detail")

	root.AddCommand(
		a.generateCommand(),
		a.validateCommand(),
		a.dialectsCommand(),
		a.configCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the casegen version",
		Args:  configArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.out.Println("casegen %s", Version)
			return nil
		},
	}
}

// loadProject loads the project named by --config, or searches for one from
// the working directory. Project warnings are printed.
func (a *app) loadProject() (*project.Project, error) {
	var (
		proj *project.Project
		err  error
	)
	if a.configPath != "" {
		proj, err = project.LoadConfigFile(a.configPath)
	} else {
		proj, err = project.LoadProject()
	}
	if err != nil {
		return nil, errors.Config(err.Error())
	}

	for _, w := range proj.Warnings {
		a.out.Warning("%s", w)
	}
	if proj.Implicit {
		a.out.Debug("no %s found, using defaults in %s", project.ConfigFileName, proj.Root)
	}
	return proj, nil
}

// configArgs reports positional argument errors as configuration errors.
func configArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Configf("%s: %v", cmd.CommandPath(), err)
		}
		return nil
	}
}
