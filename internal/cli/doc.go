// Package cli wires together the Cobra command tree for the areena binary.
//
// It defines the root command and all subcommands (episodes, seasons,
// categories, services, search-series, search-programs, program, cache,
// version), binds flags, loads the configuration, invokes the API client,
// and returns deterministic exit codes.
package cli
