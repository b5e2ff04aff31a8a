package metadata

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/premiere/pkg/omdb"
)

type countingSearcher struct {
	calls int
	err   error
}

func (s *countingSearcher) Search(_ context.Context, query string, page int) (*omdb.SearchPage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &omdb.SearchPage{
		Results: []omdb.SearchResult{{Title: fmt.Sprintf("%s p%d", query, page), Year: "2024", IMDbID: "tt1"}},
		Total:   15,
	}, nil
}

func TestCachedDirectory_CacheMiss(t *testing.T) {
	db := setupTestDB(t)
	next := &countingSearcher{}
	dir := NewCachedDirectory(next, NewCache(db), time.Hour, nil)

	page, err := dir.Search(context.Background(), "2024", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 15, page.Total)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "2024 p1", page.Results[0].Title)
}

func TestCachedDirectory_CacheHit(t *testing.T) {
	db := setupTestDB(t)
	next := &countingSearcher{}
	dir := NewCachedDirectory(next, NewCache(db), time.Hour, nil)
	ctx := context.Background()

	_, err := dir.Search(ctx, "Matrix", 1)
	require.NoError(t, err)

	page, err := dir.Search(ctx, "matrix", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls, "second lookup should be served from cache")
	assert.Equal(t, "Matrix p1", page.Results[0].Title)

	// A different page is a different entry
	_, err = dir.Search(ctx, "matrix", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedDirectory_ErrorsNotCached(t *testing.T) {
	db := setupTestDB(t)
	next := &countingSearcher{err: fmt.Errorf("%w: connection refused", omdb.ErrUnavailable)}
	dir := NewCachedDirectory(next, NewCache(db), time.Hour, nil)
	ctx := context.Background()

	_, err := dir.Search(ctx, "2024", 1)
	assert.ErrorIs(t, err, omdb.ErrUnavailable)

	_, err = dir.Search(ctx, "2024", 1)
	assert.True(t, errors.Is(err, omdb.ErrUnavailable))
	assert.Equal(t, 2, next.calls, "failures must reach the service every time")
}

func TestCachedDirectory_CorruptedEntry(t *testing.T) {
	db := setupTestDB(t)
	cache := NewCache(db)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, Key(keyPrefixSearch, "2024", "1"), []byte("{not json"), time.Hour))

	next := &countingSearcher{}
	dir := NewCachedDirectory(next, cache, time.Hour, nil)

	page, err := dir.Search(ctx, "2024", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls, "corrupted entry should be treated as a miss")
	assert.NotEmpty(t, page.Results)
}

func TestCachedDirectory_Invalidate(t *testing.T) {
	db := setupTestDB(t)
	next := &countingSearcher{}
	dir := NewCachedDirectory(next, NewCache(db), time.Hour, nil)
	ctx := context.Background()

	_, err := dir.Search(ctx, "2024", 1)
	require.NoError(t, err)
	_, err = dir.Search(ctx, "2024", 2)
	require.NoError(t, err)

	require.NoError(t, dir.Invalidate(ctx, "2024"))

	_, err = dir.Search(ctx, "2024", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, next.calls)
}

func TestCachedDirectory_InvalidateIsExact(t *testing.T) {
	db := setupTestDB(t)
	next := &countingSearcher{}
	dir := NewCachedDirectory(next, NewCache(db), time.Hour, nil)
	ctx := context.Background()

	queries := []string{"am\u00e9lie", "star", "star:wars"}
	for _, q := range queries {
		_, err := dir.Search(ctx, q, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 3, next.calls)

	require.NoError(t, dir.Invalidate(ctx, "AM\u00c9LIE"))
	_, err := dir.Search(ctx, "am\u00e9lie", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, next.calls, "non-ASCII query refetched after invalidation")

	require.NoError(t, dir.Invalidate(ctx, "star"))
	_, err = dir.Search(ctx, "star:wars", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, next.calls, "star:wars still cached")

	_, err = dir.Search(ctx, "star", 1)
	require.NoError(t, err)
	assert.Equal(t, 5, next.calls)
}
