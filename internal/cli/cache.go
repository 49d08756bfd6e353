package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tkivela/areena/internal/output"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the response cache",
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		stats, err := app.store.GetStats()
		if err != nil {
			report(fmt.Errorf("reading cache stats: %w", err))
			return nil
		}
		return writeList(output.CacheStats(stats.Dir, stats.Entries, stats.TotalBytes))
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached responses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return reportConfigError(err)
		}
		if err := app.store.Clear(); err != nil {
			report(fmt.Errorf("clearing cache: %w", err))
			return nil
		}
		fmt.Fprintln(os.Stdout, "Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
