// Package cache provides a write-through file cache for raw API response
// bodies, keyed by request URL.
//
// Keys combine a readable prefix derived from the URL path with a SHA-256
// hash of the credential-stripped URL, so identical requests made with
// different API keys share an entry. Entries are plain JSON bodies stored as
// individual files; once written they are never expired or evicted. A failed
// fetch leaves no entry behind.
package cache
