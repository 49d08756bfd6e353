package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tkivela/areena/internal/output"
)

var flagSeason string

var episodesCmd = &cobra.Command{
	Use:   "episodes <series-id>",
	Short: "List the ondemand episodes of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		episodes, err := app.client.Episodes(cmd.Context(), args[0], flagSeason)
		if err != nil {
			report(err)
			return nil
		}
		return writeList(output.Episodes(episodes, time.Now()))
	},
}

func init() {
	episodesCmd.Flags().StringVarP(&flagSeason, "season", "s", "", "Season id (not a season number)")
}
