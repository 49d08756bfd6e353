package cli

import (
	"github.com/spf13/cobra"
	"github.com/tkivela/areena/internal/areena"
	"github.com/tkivela/areena/internal/output"
)

var flagCategoriesFilter string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		categories, err := app.client.Categories(cmd.Context())
		if err != nil {
			report(err)
			return nil
		}
		categories = filterByTitle(categories, func(c areena.Category) string { return c.Title }, flagCategoriesFilter)
		return writeList(output.Categories(categories))
	},
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List publishing services (channels)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		services, err := app.client.Services(cmd.Context())
		if err != nil {
			report(err)
			return nil
		}
		return writeList(output.Services(services))
	},
}

func init() {
	categoriesCmd.Flags().StringVar(&flagCategoriesFilter, "filter", "", "Fuzzy-filter categories by title")
}
