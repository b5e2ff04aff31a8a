package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validPhotoSizes = map[string]bool{
	"w45": true, "w92": true, "w185": true, "h632": true, "original": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.OMDb.APIKey == "" {
		errs = append(errs, "omdb.api_key: required")
	}

	for field, raw := range map[string]string{
		"omdb.url":   c.OMDb.URL,
		"itunes.url": c.ITunes.URL,
		"tmdb.url":   c.TMDB.URL,
	} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s: must be an absolute URL, got %q", field, raw))
		}
	}

	if c.ITunes.SongLimit < 0 || c.ITunes.SongLimit > 200 {
		errs = append(errs, fmt.Sprintf("itunes.song_limit: must be between 1 and 200, got %d", c.ITunes.SongLimit))
	}

	// TMDB is optional; its tuning is checked only when it is enabled.
	if c.TMDB.Enabled() {
		if c.TMDB.PhotoSize != "" && !validPhotoSizes[c.TMDB.PhotoSize] {
			errs = append(errs, fmt.Sprintf("tmdb.photo_size: must be one of w45, w92, w185, h632, original; got %q", c.TMDB.PhotoSize))
		}
		if c.TMDB.Workers < 0 {
			errs = append(errs, fmt.Sprintf("tmdb.workers: must be positive, got %d", c.TMDB.Workers))
		}
		if c.TMDB.RatePerSecond < 0 {
			errs = append(errs, fmt.Sprintf("tmdb.rate_per_second: must not be negative, got %g", c.TMDB.RatePerSecond))
		}
	}

	if c.Browse.PageSize < 0 {
		errs = append(errs, fmt.Sprintf("browse.page_size: must be positive, got %d", c.Browse.PageSize))
	}
	if c.Browse.MaxPages < 0 || c.Browse.MaxPages > 100 {
		errs = append(errs, fmt.Sprintf("browse.max_pages: must be between 1 and 100, got %d", c.Browse.MaxPages))
	}

	if c.Cache.SearchTTL < 0 {
		errs = append(errs, "cache.search_ttl: must not be negative")
	}
	if c.Cache.PruneInterval < 0 {
		errs = append(errs, "cache.prune_interval: must not be negative")
	}

	return errs
}
