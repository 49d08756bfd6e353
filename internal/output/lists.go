package output

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tkivela/areena/internal/areena"
)

// Categories prepares a category listing.
func Categories(items []areena.Category) List {
	list := List{Columns: []string{"ID", "Title"}}
	for _, c := range items {
		list.Items = append(list.Items, Item{
			Text:  fmt.Sprintf("%15s %s", c.ID, c.Title),
			Row:   []string{c.ID, c.Title},
			Value: c,
		})
	}
	return list
}

// SeriesList prepares a series listing.
func SeriesList(items []areena.Series) List {
	list := List{Columns: []string{"ID", "Title"}}
	for _, s := range items {
		list.Items = append(list.Items, Item{
			Text:  fmt.Sprintf("%s\t\t%s", s.ID, s.Title),
			Row:   []string{s.ID, s.Title},
			Value: s,
		})
	}
	return list
}

// Seasons prepares a season listing.
func Seasons(items []areena.Season) List {
	list := List{Columns: []string{"ID", "Season", "Title"}}
	for _, s := range items {
		list.Items = append(list.Items, Item{
			Text:  fmt.Sprintf("%s\t\t[S%02d] %s", s.ID, s.Number, s.Title),
			Row:   []string{s.ID, fmt.Sprintf("S%02d", s.Number), s.Title},
			Value: s,
		})
	}
	return list
}

// episodeJSON augments an episode with its remaining availability, matching
// the fields the text format shows.
type episodeJSON struct {
	areena.Episode
	AvailableSeconds int64  `json:"availableSeconds"`
	Available        string `json:"available"`
}

// Episodes prepares an episode listing. The remaining availability window is
// computed against now.
func Episodes(items []areena.Episode, now time.Time) List {
	list := List{Columns: []string{"Episode", "ID", "Title", "Available until"}}
	for _, e := range items {
		se := fmt.Sprintf("S%02dE%02d", e.Season, e.Episode)
		available := e.AvailableFor(now).Truncate(time.Second)

		var window, until string
		if !e.End.IsZero() {
			window = fmt.Sprintf(" %s - %s, %s",
				e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339), available)
			until = e.End.Format(time.RFC3339)
		}
		text := fmt.Sprintf("%s [%s]%s\n  %s\n  %s", se, e.ID, window, e.Title, e.Description)

		list.Items = append(list.Items, Item{
			Text: text,
			Row:  []string{se, e.ID, e.Title, until},
			Value: episodeJSON{
				Episode:          e,
				AvailableSeconds: int64(available.Seconds()),
				Available:        available.String(),
			},
		})
	}
	return list
}

// Programs prepares a program listing.
func Programs(items []areena.Program) List {
	list := List{Columns: []string{"ID", "Title", "Description"}}
	for _, p := range items {
		text := fmt.Sprintf("%s\t\t%s", p.ID, p.Title)
		if p.Description != "" {
			text += "\n  " + p.Description
		}
		list.Items = append(list.Items, Item{
			Text:  text,
			Row:   []string{p.ID, p.Title, p.Description},
			Value: p,
		})
	}
	return list
}

// Services prepares a service listing.
func Services(items []areena.Service) List {
	list := List{Columns: []string{"ID", "Type", "Title"}}
	for _, s := range items {
		list.Items = append(list.Items, Item{
			Text:  fmt.Sprintf("%15s %-12s %s", s.ID, s.Type, s.Title),
			Row:   []string{s.ID, s.Type, s.Title},
			Value: s,
		})
	}
	return list
}

// CacheStats prepares the cache statistics summary.
func CacheStats(dir string, entries int, totalBytes int64) List {
	return List{
		Columns: []string{"Dir", "Entries", "Bytes"},
		Items: []Item{{
			Text: fmt.Sprintf("%s: %d entries, %d bytes", dir, entries, totalBytes),
			Row:  []string{dir, strconv.Itoa(entries), strconv.FormatInt(totalBytes, 10)},
			Value: map[string]any{
				"dir":        dir,
				"entries":    entries,
				"totalBytes": totalBytes,
			},
		}},
	}
}
