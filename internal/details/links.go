package details

import (
	"net/url"
	"strings"
)

// Links are streaming service searches for a song.
type Links struct {
	Spotify      string `json:"spotify"`
	Apple        string `json:"apple"`
	YouTubeMusic string `json:"youtube_music"`
	Tidal        string `json:"tidal"`
	Pandora      string `json:"pandora"`
}

// Song is one soundtrack entry.
type Song struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	AppleURL string `json:"apple_url,omitempty"`
	Links    Links  `json:"links"`
}

// SongLinks builds search links from the song name and artist. The Apple link
// is the track page when known.
func SongLinks(name, artist, appleURL string) Links {
	q := escape(strings.TrimSpace(name + " " + artist))
	if appleURL == "" {
		appleURL = "https://music.apple.com/us/search?term=" + q
	}
	return Links{
		Spotify:      "https://open.spotify.com/search/" + q,
		Apple:        appleURL,
		YouTubeMusic: "https://music.youtube.com/search?q=" + q,
		Tidal:        "https://listen.tidal.com/search?q=" + q,
		Pandora:      "https://www.pandora.com/search/" + q + "/all",
	}
}

// AvatarURL returns the generated placeholder portrait for name.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + escape(name) + "&background=0d1b3a&color=fff"
}

// escape percent-encodes s for use in a path segment or query value,
// with spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
