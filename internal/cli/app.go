package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tkivela/areena/internal/areena"
	"github.com/tkivela/areena/internal/cache"
	"github.com/tkivela/areena/internal/config"
	"github.com/tkivela/areena/internal/logging"
	"github.com/tkivela/areena/internal/output"
)

// app bundles the per-invocation collaborators. Construction fails before
// any network activity when the config file is missing or malformed.
type app struct {
	cfg    config.Config
	store  *cache.Cache
	client *areena.Client
}

func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	store, err := cache.New(!flagNoCache, cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, flagVerbose)
	return &app{
		cfg:    cfg,
		store:  store,
		client: areena.NewClient(cfg, store, log),
	}, nil
}

// reportConfigError prints a startup error and sets the config exit code.
// It returns nil so cobra does not re-print the error as a usage failure.
func reportConfigError(err error) error {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = ExitConfigError
	return nil
}

// report prints a command error to stderr and maps it to an exit code.
func report(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	switch {
	case areena.IsFetchError(err):
		exitCode = ExitFetchError
	case areena.IsParseError(err):
		exitCode = ExitParseError
	default:
		exitCode = ExitRuntimeError
	}
}

// writeList renders the list in the selected format to --out or stdout.
func writeList(list output.List) error {
	if err := output.WriteList(list, outputFormat(), flagOut); err != nil {
		report(err)
	}
	return nil
}

func outputFormat() string {
	if flagJSON {
		return "json"
	}
	return flagFormat
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// filterByTitle keeps the items whose title fuzzy-matches query. An empty
// query keeps everything.
func filterByTitle[T any](items []T, title func(T) string, query string) []T {
	if query == "" {
		return items
	}
	var out []T
	for _, item := range items {
		if fuzzy.MatchNormalizedFold(query, title(item)) {
			out = append(out, item)
		}
	}
	return out
}
