// Package areena is the typed REST client for the media catalog API. It
// builds request URLs with credentials attached as query parameters, routes
// every GET through the file-backed response cache, follows offset/limit and
// next-link pagination, and maps JSON envelopes into read-only domain
// records (Category, Series, Season, Episode, Program, Service).
//
// Failures surface as typed errors: FetchError for transport and HTTP-status
// problems, NotFoundError for missing identifiers, ParseError for malformed
// or unexpected response bodies.
package areena
