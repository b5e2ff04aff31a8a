// Package omdb provides a client for the Open Movie Database API.
package omdb

import "strconv"

// NotAvailable is the value OMDb uses for missing fields such as Poster.
const NotAvailable = "N/A"

// SearchResult is one entry of a search page.
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"` // "2010", "2011–2019", "2024–"
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"` // movie, series, episode, game
	Poster string `json:"Poster"`
}

// SearchPage is a single page of search results.
type SearchPage struct {
	Results []SearchResult
	Total   int // 0 if the service did not report a usable total
}

// Title is the full record returned by an id lookup.
type Title struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"` // comma-delimited
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	Poster     string `json:"Poster"`
	IMDbRating string `json:"imdbRating"`
	IMDbVotes  string `json:"imdbVotes"`
	IMDbID     string `json:"imdbID"`
	Type       string `json:"Type"`
}

type searchResponse struct {
	Search       []SearchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

type titleResponse struct {
	Title
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// ParseYear returns the leading year of an OMDb year string.
// Ranges like "2011–2019" yield 2011. Anything unparsable yields 0.
func ParseYear(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return year
}
