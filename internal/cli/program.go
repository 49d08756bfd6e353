package cli

import (
	"github.com/spf13/cobra"
	"github.com/tkivela/areena/internal/areena"
	"github.com/tkivela/areena/internal/output"
)

var programCmd = &cobra.Command{
	Use:   "program <id>",
	Short: "Show a single program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		program, err := app.client.ProgramByID(cmd.Context(), args[0])
		if err != nil {
			report(err)
			return nil
		}
		return writeList(output.Programs([]areena.Program{program}))
	},
}
