package cli

import (
	"github.com/spf13/cobra"
	"github.com/tkivela/areena/internal/areena"
	"github.com/tkivela/areena/internal/output"
)

var (
	flagSeriesCategories string
	flagSeriesIgnore     string
	flagSeriesFilter     string
)

var searchSeriesCmd = &cobra.Command{
	Use:   "search-series",
	Short: "List ondemand series, optionally narrowed by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		series, err := app.client.Series(cmd.Context(), areena.SeriesQuery{
			Categories:        splitComma(flagSeriesCategories),
			ExcludeCategories: splitComma(flagSeriesIgnore),
		})
		if err != nil {
			report(err)
			return nil
		}
		series = filterByTitle(series, func(s areena.Series) string { return s.Title }, flagSeriesFilter)
		return writeList(output.SeriesList(series))
	},
}

var (
	flagProgramQuery      string
	flagProgramSeries     string
	flagProgramID         string
	flagProgramCategories string
	flagProgramIgnore     string
)

var searchProgramsCmd = &cobra.Command{
	Use:   "search-programs",
	Short: "Search catalog programs by keyword, series or id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		programs, err := app.client.SearchPrograms(cmd.Context(), areena.ProgramQuery{
			Query:             flagProgramQuery,
			SeriesID:          flagProgramSeries,
			ID:                flagProgramID,
			Categories:        splitComma(flagProgramCategories),
			ExcludeCategories: splitComma(flagProgramIgnore),
		})
		if err != nil {
			report(err)
			return nil
		}
		return writeList(output.Programs(programs))
	},
}

func init() {
	searchSeriesCmd.Flags().StringVar(&flagSeriesCategories, "category", "", "Category id(s), comma-separated (see 'categories')")
	searchSeriesCmd.Flags().StringVarP(&flagSeriesIgnore, "ignore", "i", "", "Category id(s) to exclude, comma-separated")
	searchSeriesCmd.Flags().StringVar(&flagSeriesFilter, "filter", "", "Fuzzy-filter series by title")

	searchProgramsCmd.Flags().StringVarP(&flagProgramQuery, "query", "q", "", "Free-text search")
	searchProgramsCmd.Flags().StringVar(&flagProgramSeries, "series", "", "Restrict to a series id")
	searchProgramsCmd.Flags().StringVar(&flagProgramID, "id", "", "Look up a single program id")
	searchProgramsCmd.Flags().StringVar(&flagProgramCategories, "category", "", "Category id(s), comma-separated")
	searchProgramsCmd.Flags().StringVarP(&flagProgramIgnore, "ignore", "i", "", "Category id(s) to exclude, comma-separated")
}
