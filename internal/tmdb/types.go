// Package tmdb provides a client for The Movie Database person search.
package tmdb

const defaultImageBase = "https://image.tmdb.org/t/p/"

// Person is a candidate returned by a person search.
type Person struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	ProfilePath        string  `json:"profile_path"` // "/abc123.jpg", empty if none
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

type personSearchResponse struct {
	Page    int      `json:"page"`
	Results []Person `json:"results"`
}

// ProfileURL returns the full profile image URL.
// Size can be: w45, w185, h632, original
func (p *Person) ProfileURL(size string) string {
	if p.ProfilePath == "" {
		return ""
	}
	return defaultImageBase + size + p.ProfilePath
}
