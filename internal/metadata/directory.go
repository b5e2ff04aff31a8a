package metadata

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/vmunix/premiere/pkg/omdb"
)

const keyPrefixSearch = "omdb:search:"

// PageSearcher fetches one page of OMDb search results.
type PageSearcher interface {
	Search(ctx context.Context, query string, page int) (*omdb.SearchPage, error)
}

// CachedDirectory serves OMDb search pages from the cache when fresh.
// Only successful pages are cached: failures, including connectivity errors,
// always reach the caller so fallback handling still applies.
type CachedDirectory struct {
	next  PageSearcher
	cache *Cache
	ttl   time.Duration
	log   *slog.Logger
}

// NewCachedDirectory wraps next with a cache.
func NewCachedDirectory(next PageSearcher, cache *Cache, ttl time.Duration, log *slog.Logger) *CachedDirectory {
	return &CachedDirectory{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// Search returns the cached page for (query, page) or fetches and stores it.
func (d *CachedDirectory) Search(ctx context.Context, query string, page int) (*omdb.SearchPage, error) {
	key := Key(keyPrefixSearch, query, strconv.Itoa(page))

	if data, ok := d.cache.Get(ctx, key); ok {
		var cached omdb.SearchPage
		if err := json.Unmarshal(data, &cached); err == nil {
			if d.log != nil {
				d.log.Debug("cache hit for search page", "query", query, "page", page, "results", len(cached.Results))
			}
			return &cached, nil
		}
		// If unmarshal fails, treat as cache miss and fetch fresh data
		if d.log != nil {
			d.log.Warn("failed to unmarshal cached search page", "query", query, "page", page)
		}
	}

	result, err := d.next.Search(ctx, query, page)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		if d.log != nil {
			d.log.Warn("failed to marshal search page for cache", "query", query, "error", err)
		}
		return result, nil
	}

	if err := d.cache.Set(ctx, key, data, d.ttl); err != nil && d.log != nil {
		d.log.Warn("failed to cache search page", "query", query, "page", page, "error", err)
	}

	return result, nil
}

// Invalidate drops every cached page for query.
func (d *CachedDirectory) Invalidate(ctx context.Context, query string) error {
	_, err := d.cache.DeletePrefix(ctx, Key(keyPrefixSearch, query)+":")
	return err
}
