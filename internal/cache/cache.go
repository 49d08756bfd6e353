package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FetchFunc performs the network request for a cache miss and returns the
// raw response body.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Cache is a write-through, URL-keyed file cache for raw API response
// bodies. Entries are immutable once written: there is no TTL, no eviction
// and no size bound. Staleness is resolved by clearing the directory.
type Cache struct {
	dir     string
	enabled bool
}

// New creates a Cache rooted at dir, creating the directory if needed.
// A disabled cache never reads or writes files; every GetOrFetch fetches.
func New(enabled bool, dir string) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{dir: dir, enabled: true}, nil
}

// GetOrFetch returns the cached body for rawURL if present, otherwise calls
// fetch, stores the result, and returns it. A failed fetch writes nothing,
// so the next call for the same URL fetches again.
func (c *Cache) GetOrFetch(ctx context.Context, rawURL string, fetch FetchFunc) ([]byte, error) {
	if !c.enabled {
		return fetch(ctx, rawURL)
	}
	path := c.entryPath(rawURL)
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}
	body, err := fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return nil, fmt.Errorf("writing cache entry: %w", err)
	}
	return body, nil
}

// Contains reports whether an entry for rawURL exists.
func (c *Cache) Contains(rawURL string) bool {
	if !c.enabled {
		return false
	}
	_, err := os.Stat(c.entryPath(rawURL))
	return err == nil
}

// Clear removes all cache entries.
func (c *Cache) Clear() error {
	if !c.enabled || c.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading cache directory: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
				return fmt.Errorf("removing cache entry %s: %w", e.Name(), err)
			}
		}
	}
	return nil
}

// Stats describes the cache contents.
type Stats struct {
	Dir        string `json:"dir"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
}

// GetStats returns information about the cache.
func (c *Cache) GetStats() (Stats, error) {
	stats := Stats{Dir: c.dir}
	if !c.enabled || c.dir == "" {
		return stats, nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, fmt.Errorf("reading cache directory: %w", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		stats.Entries++
		stats.TotalBytes += info.Size()
	}
	return stats, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string {
	return c.dir
}

// Enabled returns whether caching is enabled.
func (c *Cache) Enabled() bool {
	return c.enabled
}

// Key derives the cache key for a request URL: a readable prefix from the
// URL path (slashes become dashes) plus the first 16 hex characters of a
// SHA-256 over host, path, and the query string with the transient
// app_id/app_key credentials removed and remaining parameters sorted.
// Two URLs differing only in credentials therefore share a key.
func Key(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		// Not a URL; hash the whole string so the key stays deterministic.
		return fmt.Sprintf("raw-%x", sha256.Sum256([]byte(rawURL)))[:20]
	}

	q := u.Query()
	q.Del("app_id")
	q.Del("app_key")
	canonical := u.Host + u.Path + "?" + q.Encode()
	sum := sha256.Sum256([]byte(canonical))

	prefix := strings.Trim(u.Path, "/")
	prefix = strings.TrimSuffix(prefix, ".json")
	prefix = strings.ReplaceAll(prefix, "/", "-")
	if prefix == "" {
		prefix = "root"
	}
	return fmt.Sprintf("%s-%x", prefix, sum[:8])
}

func (c *Cache) entryPath(rawURL string) string {
	return filepath.Join(c.dir, Key(rawURL)+".json")
}
