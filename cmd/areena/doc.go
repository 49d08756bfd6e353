// Areena is a CLI client for the Yle media catalog's public REST API.
//
// It lists episodes, seasons, categories and services, searches programs,
// and caches raw JSON responses under a local directory so repeated queries
// never refetch the same URL.
//
// Usage:
//
//	areena episodes 1-4555656                       # episodes of a series
//	areena episodes 1-4555656 --season 1-4553280    # one season only
//	areena seasons 1-4555656                        # season ids of a series
//	areena categories                               # category ids
//	areena search-series --category 5-136 --ignore 5-258,5-259
//	areena search-programs -q docventures           # keyword search
//	areena program 1-50534749                       # single program
//	areena cache clear                              # drop cached responses
//
// Credentials are read from a JSON config file (default config.json) holding
// app_id and app_key.
package main
