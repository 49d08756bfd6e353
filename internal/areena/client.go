package areena

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tkivela/areena/internal/cache"
	"github.com/tkivela/areena/internal/config"
)

const (
	// maxSeriesOffset bounds the series listing the same way the catalog's
	// search index does; pages past it return errors.
	maxSeriesOffset = 15000
	// maxSearchPages bounds next-link following so a cyclic link cannot
	// loop forever.
	maxSearchPages = 150

	episodeOrder = "episode.hash:asc,publication.starttime:asc,title.fi:asc"
)

// Client issues GET requests against the catalog API, routing every request
// through the response cache. All methods are synchronous; a fetch or parse
// failure aborts the operation with a typed error.
type Client struct {
	cfg   config.Config
	store *cache.Cache
	http  *http.Client
	log   *slog.Logger
}

// NewClient creates a Client using the given configuration and cache.
func NewClient(cfg config.Config, store *cache.Cache, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		cfg:   cfg,
		store: store,
		http:  &http.Client{Timeout: 30 * time.Second},
		log:   log,
	}
}

// Categories lists all catalog categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var items []Category
	err := c.eachPage(ctx, 0, func(offset, limit int) string {
		return c.apiURL("/v1/programs/categories.json", pageQuery(offset, limit))
	}, func(data json.RawMessage) (int, error) {
		var raw []rawCategory
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, err
		}
		for _, r := range raw {
			items = append(items, Category{ID: r.ID, Title: r.Title.pick()})
		}
		return len(raw), nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Services lists the catalog's publishing services (channels).
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	var items []Service
	err := c.eachPage(ctx, 0, func(offset, limit int) string {
		return c.apiURL("/v1/programs/services.json", pageQuery(offset, limit))
	}, func(data json.RawMessage) (int, error) {
		var raw []rawService
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, err
		}
		for _, r := range raw {
			items = append(items, Service{ID: r.ID, Type: r.Type, Title: r.Title.pick()})
		}
		return len(raw), nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SeriesQuery narrows a series listing by category.
type SeriesQuery struct {
	Categories        []string
	ExcludeCategories []string
}

// Series lists ondemand series, optionally filtered by category.
func (c *Client) Series(ctx context.Context, q SeriesQuery) ([]Series, error) {
	var items []Series
	err := c.eachPage(ctx, maxSeriesOffset, func(offset, limit int) string {
		v := pageQuery(offset, limit)
		v.Set("availability", "ondemand")
		if cats := categoryParam(q.Categories, q.ExcludeCategories); cats != "" {
			v.Set("category", cats)
		}
		return c.apiURL("/v1/series/items.json", v)
	}, func(data json.RawMessage) (int, error) {
		var raw []rawSeries
		if err := json.Unmarshal(data, &raw); err != nil {
			return 0, err
		}
		for _, r := range raw {
			items = append(items, Series{ID: r.ID, Title: r.Title.pick()})
		}
		return len(raw), nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Seasons lists the seasons of a series.
func (c *Client) Seasons(ctx context.Context, seriesID string) ([]Season, error) {
	u := c.apiURL("/v1/series/items/"+seriesID+".json", pageQuery(0, c.cfg.PageLimit))
	var env envelope
	if err := c.getJSON(ctx, u, &env); err != nil {
		return nil, err
	}
	var item rawSeriesItem
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, &ParseError{URL: u, Err: err}
	}
	seasons := make([]Season, 0, len(item.Season))
	for _, s := range item.Season {
		seasons = append(seasons, Season{ID: s.ID, Number: s.SeasonNumber, Title: s.Title.pick()})
	}
	return seasons, nil
}

// Episodes lists the ondemand episodes of a series, optionally restricted to
// one season (a season id, not a season number). Returns NotFoundError when
// the series has no matching episodes.
func (c *Client) Episodes(ctx context.Context, seriesID, seasonID string) ([]Episode, error) {
	v := pageQuery(0, c.cfg.PageLimit)
	v.Set("order", episodeOrder)
	v.Set("type", "program")
	v.Set("availability", "ondemand")
	if seasonID != "" {
		v.Set("season", seasonID)
	}
	u := c.areenaURL("/api/programs/v1/episodes/"+seriesID+".json", v)

	var env envelope
	if err := c.getJSON(ctx, u, &env); err != nil {
		return nil, err
	}
	var raw []rawEpisode
	if err := json.Unmarshal(env.Data, &raw); err != nil {
		return nil, &ParseError{URL: u, Err: err}
	}
	if len(raw) == 0 {
		return nil, &NotFoundError{URL: u}
	}

	episodes := make([]Episode, 0, len(raw))
	for _, r := range raw {
		ep := Episode{
			ID:          r.ID,
			Season:      r.PartOfSeason.SeasonNumber,
			Episode:     r.EpisodeNumber,
			Title:       r.Title.pick(),
			Description: r.Description.pick(),
		}
		start, end, err := areenaWindow(r.PublicationEvent)
		if err != nil {
			return nil, &ParseError{URL: u, Err: err}
		}
		ep.Start, ep.End = start, end
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

// ProgramByID fetches a single program record.
func (c *Client) ProgramByID(ctx context.Context, id string) (Program, error) {
	u := c.apiURL("/v1/programs/items/"+id+".json", nil)
	var env envelope
	if err := c.getJSON(ctx, u, &env); err != nil {
		return Program{}, err
	}
	var raw rawProgram
	if err := json.Unmarshal(env.Data, &raw); err != nil {
		return Program{}, &ParseError{URL: u, Err: err}
	}
	if raw.ID == "" {
		return Program{}, &NotFoundError{URL: u}
	}
	return Program{ID: raw.ID, Title: raw.Title.pick(), Description: raw.Description.pick()}, nil
}

// ProgramQuery describes a program search. Fields combine as the API's query
// parameters; at least one of Query, SeriesID, or ID is expected.
type ProgramQuery struct {
	Query             string
	SeriesID          string
	ID                string
	Categories        []string
	ExcludeCategories []string
}

// SearchPrograms searches catalog programs, following the response's
// nextPage link across result pages.
func (c *Client) SearchPrograms(ctx context.Context, q ProgramQuery) ([]Program, error) {
	v := pageQuery(0, c.cfg.PageLimit)
	v.Set("availability", "ondemand")
	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.SeriesID != "" {
		v.Set("series", q.SeriesID)
	}
	if q.ID != "" {
		v.Set("id", q.ID)
	}
	if cats := categoryParam(q.Categories, q.ExcludeCategories); cats != "" {
		v.Set("category", cats)
	}

	var items []Program
	u := c.apiURL("/v1/programs/items.json", v)
	for page := 0; u != "" && page < maxSearchPages; page++ {
		var env envelope
		if err := c.getJSON(ctx, u, &env); err != nil {
			return nil, err
		}
		var raw []rawProgram
		if err := json.Unmarshal(env.Data, &raw); err != nil {
			return nil, &ParseError{URL: u, Err: err}
		}
		for _, r := range raw {
			items = append(items, Program{ID: r.ID, Title: r.Title.pick(), Description: r.Description.pick()})
		}
		if len(raw) == 0 || env.Meta.NextPage == "" {
			break
		}
		u = c.resolveNext(env.Meta.NextPage)
	}
	return items, nil
}

// eachPage walks offset/limit pages until meta.count items were decoded or a
// short page arrives, whichever comes first. maxOffset of zero means
// unbounded.
func (c *Client) eachPage(ctx context.Context, maxOffset int, build func(offset, limit int) string, decode func(data json.RawMessage) (int, error)) error {
	limit := c.cfg.PageLimit
	total := -1
	seen := 0
	for offset := 0; maxOffset == 0 || offset <= maxOffset; offset += limit {
		u := build(offset, limit)
		var env envelope
		if err := c.getJSON(ctx, u, &env); err != nil {
			return err
		}
		n, err := decode(env.Data)
		if err != nil {
			return &ParseError{URL: u, Err: err}
		}
		if total < 0 {
			total = env.Meta.Count
		}
		seen += n
		if n < limit || seen >= total {
			break
		}
	}
	return nil
}

// getJSON resolves rawURL through the cache and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	key := cache.Key(rawURL)
	if c.store.Contains(rawURL) {
		c.log.Debug("cache hit", "key", key)
	} else {
		c.log.Debug("cache miss", "key", key)
	}
	body, err := c.store.GetOrFetch(ctx, rawURL, c.fetch)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{URL: rawURL, Err: err}
	}
	return nil
}

// fetch performs one GET request. Nothing is cached here; the cache layer
// only stores bodies this function returned without error.
func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	c.log.Debug("fetching", "key", cache.Key(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{URL: rawURL}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: rawURL, Status: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "json") {
		return nil, &FetchError{URL: rawURL, Err: fmt.Errorf("unexpected content type %q", ct)}
	}
	return body, nil
}

// apiURL builds a request URL on the main API host with credentials attached.
func (c *Client) apiURL(path string, q url.Values) string {
	return c.buildURL(c.cfg.APIHost, path, q)
}

// areenaURL builds a request URL on the Areena host with credentials attached.
func (c *Client) areenaURL(path string, q url.Values) string {
	return c.buildURL(c.cfg.AreenaHost, path, q)
}

func (c *Client) buildURL(host, path string, q url.Values) string {
	if q == nil {
		q = url.Values{}
	}
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	return baseURL(host) + path + "?" + q.Encode()
}

// resolveNext turns a nextPage link into an absolute URL with credentials.
// Links may be relative and usually arrive without the app_id/app_key pair.
func (c *Client) resolveNext(next string) string {
	if !strings.Contains(next, "://") {
		if !strings.HasPrefix(next, "/") {
			next = "/" + next
		}
		next = baseURL(c.cfg.APIHost) + next
	}
	u, err := url.Parse(next)
	if err != nil {
		return next
	}
	q := u.Query()
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	u.RawQuery = q.Encode()
	return u.String()
}

// baseURL prefixes bare hostnames with https. Hosts configured with an
// explicit scheme (test servers) are used as-is.
func baseURL(host string) string {
	if strings.Contains(host, "://") {
		return strings.TrimRight(host, "/")
	}
	return "https://" + host
}

func pageQuery(offset, limit int) url.Values {
	return url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
}

// categoryParam joins included and excluded category ids into the API's
// category parameter; excluded ids carry a leading dash.
func categoryParam(include, exclude []string) string {
	parts := make([]string, 0, len(include)+len(exclude))
	parts = append(parts, include...)
	for _, id := range exclude {
		parts = append(parts, "-"+id)
	}
	return strings.Join(parts, ",")
}

// areenaWindow picks the availability window from the publication event
// published on the Areena service itself.
func areenaWindow(events []rawPublicationEvent) (start, end time.Time, err error) {
	for _, p := range events {
		if !strings.Contains(p.Service.ID, "yle-areena") {
			continue
		}
		if len(p.Publisher) == 0 || !strings.Contains(p.Publisher[0].ID, "yle-areena") {
			continue
		}
		start, err = parseAPITime(p.StartTime)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("publication start time: %w", err)
		}
		end, err = parseAPITime(p.EndTime)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("publication end time: %w", err)
		}
		return start, end, nil
	}
	// No Areena publication event; the episode has no ondemand window.
	return time.Time{}, time.Time{}, nil
}
