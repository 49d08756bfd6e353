package areena

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/tkivela/areena/internal/cache"
	"github.com/tkivela/areena/internal/config"
	"github.com/tkivela/areena/internal/logging"
)

// newTestClient wires a client against a fixture server with a fresh cache.
func newTestClient(t *testing.T, handler http.Handler) (*Client, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	store, err := cache.New(true, dir)
	if err != nil {
		t.Fatalf("cache.New error: %v", err)
	}
	cfg := config.Config{
		AppID:      "demo",
		AppKey:     "secret",
		APIHost:    srv.URL,
		AreenaHost: srv.URL,
		CacheDir:   dir,
		PageLimit:  2,
	}
	return NewClient(cfg, store, logging.New(io.Discard, 0)), dir
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

func TestCategories_Pagination(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/programs/categories.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		q := r.URL.Query()
		if q.Get("app_id") != "demo" || q.Get("app_key") != "secret" {
			t.Errorf("request missing credentials: %s", r.URL.RawQuery)
		}
		switch q.Get("offset") {
		case "0":
			writeJSON(w, `{"meta":{"count":3},"data":[
				{"id":"5-130","title":{"fi":"Draama"}},
				{"id":"5-135","title":{"fi":"Dokumentit"}}]}`)
		case "2":
			writeJSON(w, `{"meta":{"count":3},"data":[
				{"id":"5-136","title":{"fi":"Asia"}}]}`)
		default:
			t.Errorf("unexpected offset %q", q.Get("offset"))
		}
	})

	c, _ := newTestClient(t, mux)
	categories, err := c.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories error: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("got %d categories, want 3", len(categories))
	}
	if requests != 2 {
		t.Errorf("server saw %d requests, want 2", requests)
	}
	if categories[0].ID != "5-130" || categories[0].Title != "Draama" {
		t.Errorf("first category = %+v", categories[0])
	}
}

func TestCategories_SecondCallServedFromCache(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/programs/categories.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(w, `{"meta":{"count":1},"data":[{"id":"5-130","title":{"fi":"Draama"}}]}`)
	})

	c, _ := newTestClient(t, mux)
	for i := 0; i < 2; i++ {
		if _, err := c.Categories(context.Background()); err != nil {
			t.Fatalf("Categories error: %v", err)
		}
	}
	if requests != 1 {
		t.Errorf("server saw %d requests, want 1 (second call cached)", requests)
	}
}

const episodesFixture = `{"meta":{"count":2},"data":[
	{
		"id":"1-4555657","episodeNumber":1,
		"title":{"fi":"Ensimmäinen jakso"},
		"description":{"fi":"Kuvaus"},
		"partOfSeason":{"seasonNumber":1},
		"publicationEvent":[
			{"startTime":"2026-01-01T06:00:00+03:00","endTime":"2026-06-01T06:00:00+03:00",
			 "service":{"id":"yle-tv1"},"publisher":[{"id":"yle-tv1"}]},
			{"startTime":"2026-02-01T06:00:00+03:00","endTime":"2026-12-01T06:00:00+03:00",
			 "service":{"id":"yle-areena"},"publisher":[{"id":"yle-areena"}]}
		]
	},
	{
		"id":"1-4555658","episodeNumber":2,
		"title":{"en":"Second episode"},
		"description":{"en":"Description"},
		"partOfSeason":{"seasonNumber":1},
		"publicationEvent":[
			{"startTime":"2026-02-08T06:00:00+03:00","endTime":"2026-12-08T06:00:00+03:00",
			 "service":{"id":"yle-areena"},"publisher":[{"id":"yle-areena"}]}
		]
	}
]}`

func TestEpisodes_Parse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/programs/v1/episodes/1-4555656.json", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("type") != "program" || q.Get("availability") != "ondemand" {
			t.Errorf("missing fixed query parameters: %s", r.URL.RawQuery)
		}
		writeJSON(w, episodesFixture)
	})

	c, _ := newTestClient(t, mux)
	episodes, err := c.Episodes(context.Background(), "1-4555656", "")
	if err != nil {
		t.Fatalf("Episodes error: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("got %d episodes, want 2", len(episodes))
	}

	first := episodes[0]
	if first.ID != "1-4555657" || first.Season != 1 || first.Episode != 1 {
		t.Errorf("first episode = %+v", first)
	}
	if first.Title != "Ensimmäinen jakso" {
		t.Errorf("Title = %q, want Finnish title", first.Title)
	}
	// The availability window must come from the Areena event, not the
	// broadcast one listed first.
	wantStart, _ := parseAPITime("2026-02-01T06:00:00+03:00")
	if !first.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", first.Start, wantStart)
	}

	second := episodes[1]
	if second.Title != "Second episode" {
		t.Errorf("Title = %q, want English fallback", second.Title)
	}
}

func TestEpisodes_CreatesOneCacheEntry(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/programs/v1/episodes/1-4555656.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(w, episodesFixture)
	})

	c, dir := newTestClient(t, mux)
	if _, err := c.Episodes(context.Background(), "1-4555656", ""); err != nil {
		t.Fatalf("Episodes error: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("cache dir has %d entries, want 1", len(entries))
	}

	// Repeat run: no new network calls, same result.
	episodes, err := c.Episodes(context.Background(), "1-4555656", "")
	if err != nil {
		t.Fatalf("Episodes error: %v", err)
	}
	if requests != 1 {
		t.Errorf("server saw %d requests, want 1", requests)
	}
	if len(episodes) != 2 {
		t.Errorf("got %d episodes from cache, want 2", len(episodes))
	}
}

func TestEpisodes_SeasonParameter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/programs/v1/episodes/1-4555656.json", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("season"); got != "1-4553280" {
			t.Errorf("season = %q, want 1-4553280", got)
		}
		writeJSON(w, episodesFixture)
	})

	c, _ := newTestClient(t, mux)
	if _, err := c.Episodes(context.Background(), "1-4555656", "1-4553280"); err != nil {
		t.Fatalf("Episodes error: %v", err)
	}
}

func TestEpisodes_EmptyIsNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/programs/v1/episodes/1-0.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"meta":{"count":0},"data":[]}`)
	})

	c, _ := newTestClient(t, mux)
	_, err := c.Episodes(context.Background(), "1-0", "")
	if !IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestSeasons_Parse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/series/items/1-4555656.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"meta":{},"data":{
			"id":"1-4555656","title":{"fi":"Das Boot"},
			"season":[
				{"id":"1-4553280","seasonNumber":1,"title":{"fi":"Kausi 1"}},
				{"id":"1-4553281","seasonNumber":2,"title":{"fi":"Kausi 2"}}
			]}}`)
	})

	c, _ := newTestClient(t, mux)
	seasons, err := c.Seasons(context.Background(), "1-4555656")
	if err != nil {
		t.Fatalf("Seasons error: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("got %d seasons, want 2", len(seasons))
	}
	if seasons[1].ID != "1-4553281" || seasons[1].Number != 2 || seasons[1].Title != "Kausi 2" {
		t.Errorf("second season = %+v", seasons[1])
	}
}

func TestSeries_CategoryParameter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/series/items.json", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("category"); got != "5-136,-5-258,-5-259" {
			t.Errorf("category = %q, want 5-136,-5-258,-5-259", got)
		}
		if q.Get("availability") != "ondemand" {
			t.Error("series listing must request ondemand availability")
		}
		writeJSON(w, `{"meta":{"count":1},"data":[{"id":"1-1","title":{"fi":"Sarja"}}]}`)
	})

	c, _ := newTestClient(t, mux)
	series, err := c.Series(context.Background(), SeriesQuery{
		Categories:        []string{"5-136"},
		ExcludeCategories: []string{"5-258", "5-259"},
	})
	if err != nil {
		t.Fatalf("Series error: %v", err)
	}
	if len(series) != 1 || series[0].Title != "Sarja" {
		t.Errorf("series = %+v", series)
	}
}

func TestProgramByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/programs/items/1-50534749.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"meta":{},"data":{
			"id":"1-50534749","title":{"fi":"Docventures"},"description":{"fi":"Dokumentti"}}}`)
	})

	c, _ := newTestClient(t, mux)
	p, err := c.ProgramByID(context.Background(), "1-50534749")
	if err != nil {
		t.Fatalf("ProgramByID error: %v", err)
	}
	if p.ID != "1-50534749" || p.Title != "Docventures" || p.Description != "Dokumentti" {
		t.Errorf("program = %+v", p)
	}
}

func TestSearchPrograms_FollowsNextLink(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	var srvURL string
	mux.HandleFunc("/v1/programs/items.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		q := r.URL.Query()
		if q.Get("q") != "docventures" {
			t.Errorf("q = %q, want docventures", q.Get("q"))
		}
		switch q.Get("page") {
		case "":
			// The next link arrives without credentials; the client must
			// re-attach them.
			writeJSON(w, fmt.Sprintf(`{"meta":{"count":3,"nextPage":"%s/v1/programs/items.json?page=2&q=docventures"},"data":[
				{"id":"1-1","title":{"fi":"Docventures: osa 1"}},
				{"id":"1-2","title":{"fi":"Docventures: osa 2"}}]}`, srvURL))
		case "2":
			if q.Get("app_id") != "demo" {
				t.Error("next-page request missing credentials")
			}
			writeJSON(w, `{"meta":{"count":3},"data":[
				{"id":"1-3","title":{"fi":"Docventures: osa 3"}}]}`)
		default:
			t.Errorf("unexpected page %q", q.Get("page"))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	srvURL = srv.URL

	dir := t.TempDir()
	store, err := cache.New(true, dir)
	if err != nil {
		t.Fatalf("cache.New error: %v", err)
	}
	cfg := config.Config{
		AppID: "demo", AppKey: "secret",
		APIHost: srv.URL, AreenaHost: srv.URL,
		CacheDir: dir, PageLimit: 2,
	}
	c := NewClient(cfg, store, logging.New(io.Discard, 0))

	programs, err := c.SearchPrograms(context.Background(), ProgramQuery{Query: "docventures"})
	if err != nil {
		t.Fatalf("SearchPrograms error: %v", err)
	}
	if len(programs) != 3 {
		t.Fatalf("got %d programs, want 3 across two pages", len(programs))
	}
	if requests != 2 {
		t.Errorf("server saw %d requests, want 2", requests)
	}
	if programs[2].ID != "1-3" {
		t.Errorf("last program = %+v", programs[2])
	}
}

func TestFetch_ServerErrorLeavesNoCacheEntry(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/programs/items/1-500.json", func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "upstream broken", http.StatusInternalServerError)
	})

	c, dir := newTestClient(t, mux)
	_, err := c.ProgramByID(context.Background(), "1-500")
	if !IsFetchError(err) {
		t.Fatalf("error = %v, want FetchError", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after failed fetch, want 0", len(entries))
	}

	// A retry goes back to the network, not to a poisoned cache entry.
	if _, err := c.ProgramByID(context.Background(), "1-500"); err == nil {
		t.Fatal("second call should fail too")
	}
	if requests != 2 {
		t.Errorf("server saw %d requests, want 2", requests)
	}
}

func TestFetch_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())
	_, err := c.ProgramByID(context.Background(), "1-404")
	if !IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
	if !IsFetchError(err) {
		t.Error("NotFoundError should classify as a fetch error")
	}
}

func TestFetch_RejectsNonJSONContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/programs/items/1-1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html>not json</html>")
	})

	c, dir := newTestClient(t, mux)
	_, err := c.ProgramByID(context.Background(), "1-1")
	if !IsFetchError(err) {
		t.Fatalf("error = %v, want FetchError", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries, want 0", len(entries))
	}
}

func TestGetJSON_MalformedBodyIsParseError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/programs/items/1-1.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"meta":`)
	})

	c, _ := newTestClient(t, mux)
	_, err := c.ProgramByID(context.Background(), "1-1")
	if !IsParseError(err) {
		t.Errorf("error = %v, want ParseError", err)
	}
}

func TestEpisode_AvailableFor(t *testing.T) {
	end, _ := parseAPITime("2026-03-01T12:00:00+03:00")
	ep := Episode{End: end}
	now := end.Add(-48 * time.Hour)
	if got := ep.AvailableFor(now); got != 48*time.Hour {
		t.Errorf("AvailableFor = %v, want 48h", got)
	}
}
