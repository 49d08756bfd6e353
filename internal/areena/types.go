package areena

import (
	"encoding/json"
	"sort"
	"time"
)

// Category is a catalog category (genre).
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Series is a program series.
type Series struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Season is one season of a series.
type Season struct {
	ID     string `json:"id"`
	Number int    `json:"season"`
	Title  string `json:"title"`
}

// Episode is one episode of a series, with its ondemand availability window.
type Episode struct {
	ID          string    `json:"id"`
	Season      int       `json:"season"`
	Episode     int       `json:"episode"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// AvailableFor returns how long the episode remains available after now.
// Negative when the availability window has closed.
func (e Episode) AvailableFor(now time.Time) time.Duration {
	return e.End.Sub(now.Truncate(time.Second))
}

// Program is a single catalog item (a program or an episode).
type Program struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service is a publishing service (a TV or radio channel).
type Service struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// localized is a language-tagged text field as returned by the API,
// e.g. {"fi": "...", "en": "..."}.
type localized map[string]string

// pick returns the Finnish text, falling back to English, then to the
// lexicographically first language so the choice stays deterministic.
func (l localized) pick() string {
	if v, ok := l["fi"]; ok && v != "" {
		return v
	}
	if v, ok := l["en"]; ok && v != "" {
		return v
	}
	langs := make([]string, 0, len(l))
	for k := range l {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	for _, k := range langs {
		if l[k] != "" {
			return l[k]
		}
	}
	return ""
}

// apiTimeLayout matches the API's timestamps, RFC3339 with a numeric zone
// (a fixed +03:00 offset in practice).
const apiTimeLayout = "2006-01-02T15:04:05-07:00"

func parseAPITime(raw string) (time.Time, error) {
	return time.Parse(apiTimeLayout, raw)
}

// Raw wire shapes. Only the fields the CLI prints are decoded.

type envelope struct {
	Meta meta            `json:"meta"`
	Data json.RawMessage `json:"data"`
}

type meta struct {
	Count    int    `json:"count"`
	NextPage string `json:"nextPage"`
}

type rawCategory struct {
	ID    string    `json:"id"`
	Title localized `json:"title"`
}

type rawSeries struct {
	ID    string    `json:"id"`
	Title localized `json:"title"`
}

type rawSeriesItem struct {
	ID     string      `json:"id"`
	Title  localized   `json:"title"`
	Season []rawSeason `json:"season"`
}

type rawSeason struct {
	ID           string    `json:"id"`
	SeasonNumber int       `json:"seasonNumber"`
	Title        localized `json:"title"`
}

type rawEpisode struct {
	ID            string    `json:"id"`
	EpisodeNumber int       `json:"episodeNumber"`
	Title         localized `json:"title"`
	Description   localized `json:"description"`
	PartOfSeason  struct {
		SeasonNumber int `json:"seasonNumber"`
	} `json:"partOfSeason"`
	PublicationEvent []rawPublicationEvent `json:"publicationEvent"`
}

type rawPublicationEvent struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Service   struct {
		ID string `json:"id"`
	} `json:"service"`
	Publisher []struct {
		ID string `json:"id"`
	} `json:"publisher"`
}

type rawProgram struct {
	ID          string    `json:"id"`
	Title       localized `json:"title"`
	Description localized `json:"description"`
}

type rawService struct {
	ID    string    `json:"id"`
	Type  string    `json:"type"`
	Title localized `json:"title"`
}
