package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/casegen/internal/dialect"
)

// sampleExercise names the exercise whose file name the dialects table shows.
const sampleExercise = "book-store"

func (a *app) dialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the target dialects",
		Args:  configArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := dialect.NewRegistry(dialect.Options{})
			title := cases.Title(language.English)

			var rows [][]string
			for _, name := range registry.Names() {
				aliases := strings.Join(registry.Aliases(name), ", ")
				if aliases == "" {
					aliases = "-"
				}
				rows = append(rows, []string{
					name,
					title.String(name),
					aliases,
					registry.Get(name).FileName(sampleExercise),
				})
			}
			a.out.Table([]string{"NAME", "TITLE", "ALIASES", "FILE"}, rows)
			return nil
		},
	}
}
