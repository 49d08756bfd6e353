package cli

import (
	"github.com/spf13/cobra"
	"github.com/tkivela/areena/internal/output"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons <series-id>",
	Short: "List the seasons of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		seasons, err := app.client.Seasons(cmd.Context(), args[0])
		if err != nil {
			report(err)
			return nil
		}
		return writeList(output.Seasons(seasons))
	},
}
