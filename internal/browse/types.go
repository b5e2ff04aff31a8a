// Package browse holds the search result store and the pagination controller.
package browse

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/vmunix/premiere/pkg/omdb"
)

// DefaultPosterURL is shown when a title has no poster.
const DefaultPosterURL = "https://m.media-amazon.com/images/M/MV5BMTczNTI2ODUwOF5BMl5BanBnXkFtZTcwMTU0NTIzMw@@._V1_SX300.jpg"

// User-visible messages.
const (
	MsgEmptyQuery = "Enter a movie title to search."
	MsgDegraded   = "Network issue fetching movies. Showing fallback picks."
)

// ErrEmptyQuery is returned when a search is attempted with blank input.
var ErrEmptyQuery = errors.New("empty search query")

// ResultItem is one entry in the result set.
type ResultItem struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Year   string `json:"year"`
	Poster string `json:"poster"` // omdb.NotAvailable when the service has none
	Type   string `json:"type"`
	IMDbID string `json:"imdb_id,omitempty"`
}

// ReleaseYear parses Year; unparsable years are 0.
func (r ResultItem) ReleaseYear() int {
	return omdb.ParseYear(r.Year)
}

// PosterURL returns the poster or the default placeholder.
func (r ResultItem) PosterURL() string {
	if r.Poster == "" || r.Poster == omdb.NotAvailable {
		return DefaultPosterURL
	}
	return r.Poster
}

// MediaType returns Type, defaulting to "movie".
func (r ResultItem) MediaType() string {
	if r.Type == "" {
		return "movie"
	}
	return r.Type
}

// itemsFromPage converts a page, sorts it by year descending and assigns keys
// assuming the page starts at position offset of the result set.
func itemsFromPage(results []omdb.SearchResult, offset int) []ResultItem {
	items := make([]ResultItem, len(results))
	for i, r := range results {
		items[i] = ResultItem{
			Title:  r.Title,
			Year:   r.Year,
			Poster: r.Poster,
			Type:   r.Type,
			IMDbID: r.IMDbID,
		}
	}
	sortByYear(items)
	return withKeys(items, offset)
}

// sortByYear orders newest first. Ties keep fetch order.
func sortByYear(items []ResultItem) {
	slices.SortStableFunc(items, func(a, b ResultItem) int {
		return cmp.Compare(b.ReleaseYear(), a.ReleaseYear())
	})
}

// withKeys sets Key to the IMDb id, or "<position> - <title>" when absent.
func withKeys(items []ResultItem, offset int) []ResultItem {
	for i := range items {
		if items[i].IMDbID != "" {
			items[i].Key = items[i].IMDbID
		} else {
			items[i].Key = fmt.Sprintf("%d - %s", offset+i, items[i].Title)
		}
	}
	return items
}
