package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/casegen/internal/config"
	"github.com/AndreyAkinshin/casegen/internal/errors"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the project configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate",
			Short: "Check .casegen.yaml",
			Args:  configArgs(cobra.NoArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				proj, err := a.loadProject()
				if err != nil {
					return err
				}
				if proj.Implicit {
					a.out.Hint("no configuration file found; defaults apply")
				}
				a.out.Success("Configuration is valid.")
				a.out.Info("Dialect: %s", proj.Config.Dialect)
				a.out.Info("Spec root: %s", proj.SpecRoot())
				a.out.Info("Exercise overrides: %d", len(proj.Config.Exercises))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show [exercise]",
			Short: "Print the effective configuration as YAML",
			Long: `Show prints the configuration with defaults applied. Given an exercise,
it prints the settings used for that exercise after its overrides are merged.`,
			Args: configArgs(cobra.MaximumNArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				proj, err := a.loadProject()
				if err != nil {
					return err
				}
				var v interface{} = proj.Config
				if len(args) == 1 {
					if err := config.ValidateExerciseName(args[0]); err != nil {
						return errors.Config(err.Error())
					}
					v = proj.Config.ForExercise(args[0])
				}
				data, err := yaml.Marshal(v)
				if err != nil {
					return errors.Wrap(err, "failed to encode configuration")
				}
				a.out.Print("%s", data)
				return nil
			},
		},
	)
	return cmd
}
