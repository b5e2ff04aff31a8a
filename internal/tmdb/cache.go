package tmdb

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// cache holds person search results in memory; a ttl <= 0 disables caching.
// An expired entry is dropped when read, and set sweeps all expired entries
// at most once per ttl.
type cache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	entries   map[string]cached
	lastSweep time.Time
}

type cached struct {
	people  []Person
	expires time.Time
}

func newCache(ttl time.Duration) *cache {
	return &cache{ttl: ttl, now: time.Now, entries: make(map[string]cached)}
}

// cacheKey folds case and composes accents so "ZOË kravitz" and "Zoë Kravitz"
// share an entry.
func cacheKey(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

func (c *cache) get(name string) ([]Person, bool) {
	key := cacheKey(name)
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := c.now()
	if now.Before(e.expires) {
		return e.people, true
	}

	c.mu.Lock()
	// Another set may have refreshed it since the read.
	if e, ok := c.entries[key]; ok && !now.Before(e.expires) {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return nil, false
}

func (c *cache) set(name string, people []Person) {
	if c.ttl <= 0 {
		return
	}
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.lastSweep) >= c.ttl {
		for k, e := range c.entries {
			if !now.Before(e.expires) {
				delete(c.entries, k)
			}
		}
		c.lastSweep = now
	}
	c.entries[cacheKey(name)] = cached{people: people, expires: now.Add(c.ttl)}
}
