package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.1.0"

// Exit codes: every fetch or parse failure is terminal for the command and
// maps to a distinct non-zero status.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
	ExitFetchError   = 4
	ExitParseError   = 5
)

// Persistent flags shared by every subcommand.
var (
	flagConfig  string
	flagFormat  string
	flagJSON    bool
	flagOut     string
	flagVerbose int
	flagNoCache bool
)

var rootCmd = &cobra.Command{
	Use:   "areena",
	Short: "Media catalog API CLI",
	Long:  "Areena lists episodes, seasons, categories and services from the Yle media catalog API and searches its programs, caching raw responses locally.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(searchSeriesCmd)
	rootCmd.AddCommand(searchProgramsCmd)
	rootCmd.AddCommand(programCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print areena version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "areena version %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "config.json", "JSON configuration file with API credentials")
	pf.StringVar(&flagFormat, "format", "text", "Output format (text, json, table)")
	pf.BoolVarP(&flagJSON, "json", "J", false, "Shorthand for --format json")
	pf.StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	pf.CountVarP(&flagVerbose, "verbose", "v", "Enable debug logging")
	pf.BoolVar(&flagNoCache, "no-cache", false, "Bypass the response cache")
}
