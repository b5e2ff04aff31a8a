// Package metadata caches remote metadata responses in SQLite.
package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Cache is a TTL key/value store over the metadata_cache table.
// Expired rows stay readable to nobody and are removed by Prune.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// keyEscaper escapes the part separator so Key(prefix, a)+":" is a prefix
// of Key(prefix, a, b) and of no key built from a different a.
var keyEscaper = strings.NewReplacer(`\`, `\\`, ":", `\:`)

// Key joins parts into a cache key. Free-text parts are case folded and
// NFC-normalized since the remote services match case-insensitively.
func Key(prefix string, parts ...string) string {
	folded := make([]string, len(parts))
	for i, p := range parts {
		folded[i] = keyEscaper.Replace(cases.Fold().String(norm.NFC.String(strings.TrimSpace(p))))
	}
	return prefix + strings.Join(folded, ":")
}

// Get returns the value stored under key while it is fresh.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	var (
		value     string
		expiresAt time.Time
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM metadata_cache WHERE key = ?`, key,
	).Scan(&value, &expiresAt)
	if err != nil || !c.now().Before(expiresAt) {
		return nil, false
	}
	return []byte(value), true
}

// Set upserts value under key; the entry expires ttl from now.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO metadata_cache (key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, string(value), c.now().Add(ttl),
	)
	if err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM metadata_cache WHERE key = ?`, key); err != nil {
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

// DeletePrefix removes every entry whose key starts with prefix.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	return c.exec(ctx, "cache delete prefix",
		`DELETE FROM metadata_cache WHERE substr(key, 1, length(?)) = ?`, prefix, prefix)
}

// Prune removes expired entries and reports how many were dropped.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	return c.exec(ctx, "cache prune",
		`DELETE FROM metadata_cache WHERE expires_at <= ?`, c.now())
}

func (c *Cache) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.RowsAffected()
}
